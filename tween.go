package dioteko

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 channels at once. Create one with
// TweenVector, TweenColor or TweenFloat and call Update with the frame time
// (Window.FrameTime) once per frame. Values are written to the target after
// every Update.
//
// There is no global animation manager; the caller owns the group.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	write  func(vals [4]float32)
	Done   bool
}

// Update advances every channel by dt seconds and writes the new values. It
// reports whether the group has finished.
func (g *TweenGroup) Update(dt float32) bool {
	if g.Done {
		return true
	}
	var vals [4]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.write(vals)
	g.Done = allDone
	return allDone
}

// Reset rewinds the group to its start values.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenVector animates *v towards to over duration seconds.
func TweenVector(v *Vector2, to Vector2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(v.X, to.X, duration, fn)
	g.tweens[1] = gween.New(v.Y, to.Y, duration, fn)
	g.write = func(vals [4]float32) {
		v.X, v.Y = vals[0], vals[1]
	}
	return g
}

// TweenColor animates all four channels of *c towards to.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.write = func(vals [4]float32) {
		c.R, c.G, c.B, c.A = channel(vals[0]), channel(vals[1]), channel(vals[2]), channel(vals[3])
	}
	return g
}

// TweenFloat animates a single value, e.g. a radius or a rotation.
func TweenFloat(f *float32, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(*f, to, duration, fn)
	g.write = func(vals [4]float32) {
		*f = vals[0]
	}
	return g
}

// channel rounds an eased value into a color channel. Overshooting easings
// (back, elastic) are clamped.
func channel(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(255, v)))))
}
