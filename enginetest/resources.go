package enginetest

import "github.com/e0328eric/dioteko"

func (e *Engine) allocID() uint32 {
	e.nextID++
	return e.nextID
}

// outcome decides what a load from source produces: a full resource, a
// partial one (ID but no size) or nothing.
func (e *Engine) outcome(source string) (ok, partial bool) {
	if e.failLoads[source] {
		return false, false
	}
	if e.partialLoads[source] {
		return false, true
	}
	return true, false
}

func (e *Engine) sizeOf(path string) (int32, int32) {
	if s, ok := e.sizes[path]; ok {
		return s[0], s[1]
	}
	return DefaultImageSize, DefaultImageSize
}

func (e *Engine) newTexture(source string, w, h int32) dioteko.RawTexture {
	ok, partial := e.outcome(source)
	switch {
	case partial:
		tex := dioteko.RawTexture{ID: e.allocID()}
		e.textures[tex.ID] = tex
		return tex
	case !ok:
		return dioteko.RawTexture{}
	}
	tex := dioteko.RawTexture{
		ID:      e.allocID(),
		Width:   w,
		Height:  h,
		Mipmaps: 1,
		Format:  dioteko.PixelFormatR8G8B8A8,
	}
	e.textures[tex.ID] = tex
	return tex
}

func (e *Engine) newImage(source string, w, h int32) dioteko.RawImage {
	ok, partial := e.outcome(source)
	switch {
	case partial:
		img := dioteko.RawImage{ID: e.allocID()}
		e.images[img.ID] = img
		return img
	case !ok:
		return dioteko.RawImage{}
	}
	img := dioteko.RawImage{
		ID:      e.allocID(),
		Width:   w,
		Height:  h,
		Mipmaps: 1,
		Format:  dioteko.PixelFormatR8G8B8A8,
	}
	e.images[img.ID] = img
	return img
}

func (e *Engine) countUnload(call string, id uint32, known bool) {
	e.unloads[id]++
	if !known {
		e.violate("%s of unknown or already unloaded resource %d", call, id)
	}
}

func (e *Engine) LoadTexture(path string) dioteko.RawTexture {
	e.record("LoadTexture")
	e.requireWindow("LoadTexture")
	w, h := e.sizeOf(path)
	return e.newTexture(path, w, h)
}

func (e *Engine) LoadTextureFromImage(img dioteko.RawImage) dioteko.RawTexture {
	e.record("LoadTextureFromImage")
	e.requireWindow("LoadTextureFromImage")
	src, ok := e.images[img.ID]
	if !ok {
		e.violate("LoadTextureFromImage with unknown image %d", img.ID)
		return dioteko.RawTexture{}
	}
	return e.newTexture("image", src.Width, src.Height)
}

func (e *Engine) UnloadTexture(tex dioteko.RawTexture) {
	e.record("UnloadTexture")
	_, known := e.textures[tex.ID]
	delete(e.textures, tex.ID)
	e.countUnload("UnloadTexture", tex.ID, known)
}

func (e *Engine) LoadRenderTexture(width, height int) dioteko.RawRenderTexture {
	e.record("LoadRenderTexture")
	e.requireWindow("LoadRenderTexture")
	ok, partial := e.outcome("render")
	if !partial && (!ok || width <= 0 || height <= 0) {
		return dioteko.RawRenderTexture{}
	}
	rt := dioteko.RawRenderTexture{ID: e.allocID()}
	if !partial {
		rt.Texture = dioteko.RawTexture{
			ID:      e.allocID(),
			Width:   int32(width),
			Height:  int32(height),
			Mipmaps: 1,
			Format:  dioteko.PixelFormatR8G8B8A8,
		}
		rt.Depth = dioteko.RawTexture{ID: e.allocID(), Width: int32(width), Height: int32(height)}
	}
	e.targets[rt.ID] = rt
	return rt
}

func (e *Engine) UnloadRenderTexture(target dioteko.RawRenderTexture) {
	e.record("UnloadRenderTexture")
	_, known := e.targets[target.ID]
	delete(e.targets, target.ID)
	e.countUnload("UnloadRenderTexture", target.ID, known)
}

func (e *Engine) LoadImage(path string) dioteko.RawImage {
	e.record("LoadImage")
	w, h := e.sizeOf(path)
	return e.newImage(path, w, h)
}

func (e *Engine) LoadImageFromMemory(fileType string, data []byte) dioteko.RawImage {
	e.record("LoadImageFromMemory")
	if len(data) == 0 {
		return dioteko.RawImage{}
	}
	return e.newImage("memory", DefaultImageSize, DefaultImageSize)
}

func (e *Engine) LoadImageFromTexture(tex dioteko.RawTexture) dioteko.RawImage {
	e.record("LoadImageFromTexture")
	e.requireWindow("LoadImageFromTexture")
	e.requireTexture("LoadImageFromTexture", tex.ID)
	return e.newImage("texture", tex.Width, tex.Height)
}

func (e *Engine) LoadImageFromScreen() dioteko.RawImage {
	e.record("LoadImageFromScreen")
	e.requireFrame("LoadImageFromScreen")
	return e.newImage("screen", int32(e.width), int32(e.height))
}

func (e *Engine) ImageCopy(img dioteko.RawImage) dioteko.RawImage {
	e.record("ImageCopy")
	src, ok := e.images[img.ID]
	if !ok {
		e.violate("ImageCopy of unknown image %d", img.ID)
		return dioteko.RawImage{}
	}
	return e.newImage("image", src.Width, src.Height)
}

func (e *Engine) UnloadImage(img dioteko.RawImage) {
	e.record("UnloadImage")
	_, known := e.images[img.ID]
	delete(e.images, img.ID)
	e.countUnload("UnloadImage", img.ID, known)
}

func (e *Engine) ExportImage(img dioteko.RawImage, fileName string) bool {
	e.record("ExportImage")
	if _, ok := e.images[img.ID]; !ok {
		e.violate("ExportImage of unknown image %d", img.ID)
		return false
	}
	if e.FailExport {
		return false
	}
	e.exported[fileName] = img
	return true
}
