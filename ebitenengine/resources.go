package ebitenengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/e0328eric/dioteko"
)

func textureDesc(id uint32, img *ebiten.Image) dioteko.RawTexture {
	b := img.Bounds()
	return dioteko.RawTexture{
		ID:      id,
		Width:   int32(b.Dx()),
		Height:  int32(b.Dy()),
		Mipmaps: 1,
		Format:  dioteko.PixelFormatR8G8B8A8,
	}
}

func imageDesc(id uint32, img *image.NRGBA) dioteko.RawImage {
	b := img.Bounds()
	return dioteko.RawImage{
		ID:      id,
		Width:   int32(b.Dx()),
		Height:  int32(b.Dy()),
		Mipmaps: 1,
		Format:  dioteko.PixelFormatR8G8B8A8,
	}
}

func (e *Engine) addTexture(img *ebiten.Image) dioteko.RawTexture {
	id := e.ids.alloc()
	e.textures.register(id, img)
	return textureDesc(id, img)
}

func (e *Engine) addImage(img *image.NRGBA) dioteko.RawImage {
	if img.Bounds().Empty() {
		return dioteko.RawImage{}
	}
	id := e.ids.alloc()
	e.images.register(id, img)
	return imageDesc(id, img)
}

func (e *Engine) LoadTexture(path string) dioteko.RawTexture {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		dioteko.Logger().Debug("ebitenengine: load texture", "path", path, "err", err)
		return dioteko.RawTexture{}
	}
	return e.addTexture(img)
}

func (e *Engine) LoadTextureFromImage(src dioteko.RawImage) dioteko.RawTexture {
	img, ok := e.images.lookup(src.ID)
	if !ok {
		return dioteko.RawTexture{}
	}
	return e.addTexture(ebiten.NewImageFromImage(img))
}

func (e *Engine) UnloadTexture(tex dioteko.RawTexture) {
	if img, ok := e.textures.unregister(tex.ID); ok {
		img.Deallocate()
	}
}

// LoadRenderTexture takes an offscreen image from the pool. The color
// buffer gets its own texture ID so it can be drawn like any texture. There
// is no separate depth buffer.
func (e *Engine) LoadRenderTexture(width, height int) dioteko.RawRenderTexture {
	if width <= 0 || height <= 0 {
		return dioteko.RawRenderTexture{}
	}
	img := e.pool.acquire(width, height)
	tex := e.addTexture(img)
	id := e.ids.alloc()
	e.targets.register(id, &renderTarget{img: img, texID: tex.ID})
	return dioteko.RawRenderTexture{ID: id, Texture: tex}
}

func (e *Engine) UnloadRenderTexture(target dioteko.RawRenderTexture) {
	rt, ok := e.targets.unregister(target.ID)
	if !ok {
		return
	}
	e.textures.unregister(rt.texID)
	if e.canvas == rt.img {
		e.canvas = e.screen
	}
	e.pool.release(rt.img)
}

func (e *Engine) LoadImage(path string) dioteko.RawImage {
	img, err := decodeFile(path)
	if err != nil {
		dioteko.Logger().Debug("ebitenengine: load image", "path", path, "err", err)
		return dioteko.RawImage{}
	}
	return e.addImage(img)
}

func (e *Engine) LoadImageFromMemory(fileType string, data []byte) dioteko.RawImage {
	img, err := decodeMemory(fileType, data)
	if err != nil {
		dioteko.Logger().Debug("ebitenengine: load image from memory", "type", fileType, "err", err)
		return dioteko.RawImage{}
	}
	return e.addImage(img)
}

func (e *Engine) LoadImageFromTexture(tex dioteko.RawTexture) dioteko.RawImage {
	img, ok := e.textures.lookup(tex.ID)
	if !ok {
		return dioteko.RawImage{}
	}
	return e.addImage(readNRGBA(img))
}

func (e *Engine) LoadImageFromScreen() dioteko.RawImage {
	if e.screen == nil {
		return dioteko.RawImage{}
	}
	return e.addImage(readNRGBA(e.screen))
}

func (e *Engine) ImageCopy(src dioteko.RawImage) dioteko.RawImage {
	img, ok := e.images.lookup(src.ID)
	if !ok {
		return dioteko.RawImage{}
	}
	return e.addImage(cloneNRGBA(img))
}

func (e *Engine) UnloadImage(img dioteko.RawImage) {
	e.images.unregister(img.ID)
}

func (e *Engine) ExportImage(src dioteko.RawImage, fileName string) bool {
	img, ok := e.images.lookup(src.ID)
	if !ok {
		return false
	}
	if err := encodeFile(fileName, img); err != nil {
		dioteko.Logger().Warn("ebitenengine: export image", "file", fileName, "err", err)
		return false
	}
	return true
}
