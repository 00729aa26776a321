package ebitenengine

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/e0328eric/dioteko"
)

// lineSpacing is the distance between text lines as a multiple of the font
// size.
const lineSpacing = 1.2

func (e *Engine) ClearBackground(c dioteko.Color) {
	if e.canvas == nil {
		return
	}
	e.canvas.Fill(c)
}

func (e *Engine) DrawPixelV(pos dioteko.Vector2, c dioteko.Color) {
	if e.canvas == nil {
		return
	}
	vector.DrawFilledRect(e.canvas, pos.X, pos.Y, 1, 1, c, false)
}

func (e *Engine) DrawLineV(start, end dioteko.Vector2, c dioteko.Color) {
	if e.canvas == nil {
		return
	}
	vector.StrokeLine(e.canvas, start.X, start.Y, end.X, end.Y, 1, c, e.antialias)
}

func (e *Engine) DrawCircleV(center dioteko.Vector2, radius float32, c dioteko.Color) {
	if e.canvas == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(e.canvas, center.X, center.Y, radius, c, e.antialias)
}

func (e *Engine) DrawRectangleRec(rec dioteko.Rectangle, c dioteko.Color) {
	if e.canvas == nil || rec.Width <= 0 || rec.Height <= 0 {
		return
	}
	vector.DrawFilledRect(e.canvas, rec.X, rec.Y, rec.Width, rec.Height, c, e.antialias)
}

// face returns the cached face for a pixel size.
func (e *Engine) face(size int) *text.GoTextFace {
	if f, ok := e.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.fontSource, Size: float64(size)}
	e.faces[size] = f
	return f
}

func (e *Engine) DrawText(s string, x, y, fontSize int, c dioteko.Color) {
	if e.canvas == nil || s == "" || fontSize <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(fontSize) * lineSpacing
	text.Draw(e.canvas, s, e.face(fontSize), op)
}

func (e *Engine) DrawTextureV(tex dioteko.RawTexture, pos dioteko.Vector2, tint dioteko.Color) {
	img, ok := e.textures.lookup(tex.ID)
	if e.canvas == nil || !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(tint)
	e.canvas.DrawImage(img, op)
}

// DrawTextureRec draws the src part of tex at pos. A negative src width or
// height flips the part along that axis.
func (e *Engine) DrawTextureRec(tex dioteko.RawTexture, src dioteko.Rectangle, pos dioteko.Vector2, tint dioteko.Color) {
	img, ok := e.textures.lookup(tex.ID)
	if e.canvas == nil || !ok {
		return
	}
	w, h := math.Abs(float64(src.Width)), math.Abs(float64(src.Height))
	x0, y0 := int(src.X), int(src.Y)
	part := img.SubImage(image.Rect(x0, y0, x0+int(w), y0+int(h))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if src.Width < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	if src.Height < 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, h)
	}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(tint)
	e.canvas.DrawImage(part, op)
}
