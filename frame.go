package dioteko

import (
	"fmt"
	"time"
)

// Painter is the token for one open frame. It exists only between the
// engine's begin-frame and end-frame calls, and drawing is only possible
// through it. At most one Painter is live per session.
//
// Always end the frame, on every path:
//
//	p, err := win.BeginDrawing()
//	if err != nil {
//		return err
//	}
//	defer p.End()
//
// or use Window.Draw, which does this for you.
type Painter struct {
	_       noCopy
	win     *Window
	canvas  Canvas
	ended   bool
	texMode bool
	stats   frameStats
}

// BeginDrawing opens a frame. It fails with a *ProtocolViolation wrapping
// ErrSessionClosed on a closed window, or ErrFrameActive if a Painter is
// already live.
func (w *Window) BeginDrawing() (*Painter, error) {
	const op = "Window.BeginDrawing"
	if err := w.checkReady(op); err != nil {
		return nil, err
	}
	if w.painter != nil {
		return nil, violation(op, ErrFrameActive)
	}
	p := &Painter{win: w, canvas: w.engine}
	if w.debug {
		p.stats.start = time.Now()
	}
	w.painter = p
	w.engine.BeginDrawing()
	return p, nil
}

// Draw runs fn inside one frame. The frame is ended on every exit path,
// including an error or a panic in fn.
func (w *Window) Draw(fn func(p *Painter) error) (err error) {
	p, err := w.BeginDrawing()
	if err != nil {
		return err
	}
	defer func() {
		if endErr := p.End(); err == nil {
			err = endErr
		}
	}()
	return fn(p)
}

// End closes the frame, issuing the engine's end-frame call exactly once.
// An open texture mode is closed first. Calling End again does nothing.
func (p *Painter) End() error {
	if p.ended {
		return nil
	}
	p.ended = true
	if p.texMode {
		p.texMode = false
		p.canvas.EndTextureMode()
	}
	p.canvas.EndDrawing()
	p.win.painter = nil
	p.win.frames++
	if p.win.debug {
		p.stats.log(p.win.frames)
	}
	return nil
}

// Ended reports whether End has been called.
func (p *Painter) Ended() bool {
	return p.ended
}

func (p *Painter) live(op string) Canvas {
	if p.ended {
		panic(violation(op, ErrFrameEnded))
	}
	p.stats.drawCalls++
	return p.canvas
}

// TextureMode redirects drawing into target for the duration of fn. The
// texture mode is closed on every exit path. Texture modes do not nest.
func (p *Painter) TextureMode(target *RenderTexture, fn func(p *Painter) error) (err error) {
	const op = "Painter.TextureMode"
	if p.ended {
		return violation(op, ErrFrameEnded)
	}
	if p.texMode {
		return violation(op, ErrTextureModeActive)
	}
	raw := p.ownedRaw(op, target.live(op))
	p.texMode = true
	p.canvas.BeginTextureMode(raw)
	defer func() {
		if p.texMode {
			p.texMode = false
			p.canvas.EndTextureMode()
		}
	}()
	return fn(p)
}

// ownedRaw rejects resources loaded by a session other than the current one.
func (p *Painter) ownedRaw(op string, r *resource[RawRenderTexture]) RawRenderTexture {
	if r.owner != p.win {
		panic(violation(op, ErrSessionClosed))
	}
	return r.raw
}

func (p *Painter) textureRaw(op string, tex *Texture) RawTexture {
	r := tex.live(op)
	if r.owner != p.win {
		panic(violation(op, ErrSessionClosed))
	}
	return r.raw
}

// --- Drawing ---

// ClearBackground fills the current target with c.
func (p *Painter) ClearBackground(c Color) {
	p.live("Painter.ClearBackground").ClearBackground(c)
}

func (p *Painter) DrawPixel(pos Vector2, c Color) {
	p.live("Painter.DrawPixel").DrawPixelV(pos, c)
}

func (p *Painter) DrawLine(start, end Vector2, c Color) {
	p.live("Painter.DrawLine").DrawLineV(start, end, c)
}

func (p *Painter) DrawCircle(center Vector2, radius float32, c Color) {
	p.live("Painter.DrawCircle").DrawCircleV(center, radius, c)
}

func (p *Painter) DrawRectangle(rec Rectangle, c Color) {
	p.live("Painter.DrawRectangle").DrawRectangleRec(rec, c)
}

// DrawText draws text with the engine's default font; (x, y) is the
// top-left corner.
func (p *Painter) DrawText(text string, x, y, fontSize int, c Color) {
	p.live("Painter.DrawText").DrawText(text, x, y, fontSize, c)
}

// DrawTexture draws tex with its top-left corner at pos, multiplied by tint.
func (p *Painter) DrawTexture(tex *Texture, pos Vector2, tint Color) {
	const op = "Painter.DrawTexture"
	raw := p.textureRaw(op, tex)
	p.live(op).DrawTextureV(raw, pos, tint)
}

// DrawTextureRec draws the src sub-rectangle of tex at pos.
func (p *Painter) DrawTextureRec(tex *Texture, src Rectangle, pos Vector2, tint Color) {
	const op = "Painter.DrawTextureRec"
	raw := p.textureRaw(op, tex)
	p.live(op).DrawTextureRec(raw, src, pos, tint)
}

// DrawRenderTexture draws the color buffer of target at pos.
func (p *Painter) DrawRenderTexture(target *RenderTexture, pos Vector2, tint Color) {
	const op = "Painter.DrawRenderTexture"
	raw := p.ownedRaw(op, target.live(op))
	p.live(op).DrawTextureV(raw.Texture, pos, tint)
}

// DrawFPS draws the measured frame rate at (x, y).
func (p *Painter) DrawFPS(x, y int) {
	canvas := p.live("Painter.DrawFPS")
	fps := p.win.engine.GetFPS()
	c := Lime
	switch {
	case fps < 15:
		c = Red
	case fps < 30:
		c = Orange
	}
	canvas.DrawText(fmt.Sprintf("%d FPS", fps), x, y, 20, c)
}

// LoadImageFromScreen copies the current framebuffer into a new CPU image.
func (p *Painter) LoadImageFromScreen() (*Image, error) {
	const op = "Painter.LoadImageFromScreen"
	if p.ended {
		return nil, violation(op, ErrFrameEnded)
	}
	e := p.win.engine
	return loadImage(e, op, "screen", e.LoadImageFromScreen())
}
