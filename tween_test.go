package dioteko

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenVectorReachesTarget(t *testing.T) {
	pos := Vector2{10, 20}
	g := TweenVector(&pos, Vector2{100, 200}, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	if g.Update(0.5) {
		t.Fatal("done at halfway")
	}
	if math.Abs(float64(pos.X-55)) > 0.5 {
		t.Errorf("X = %f at halfway, want ~55", pos.X)
	}
	if !g.Update(0.5) || !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(float64(pos.X-100)) > 0.5 || math.Abs(float64(pos.Y-200)) > 0.5 {
		t.Errorf("pos = %v, want ~(100, 200)", pos)
	}
}

func TestTweenColorAllChannels(t *testing.T) {
	c := Color{255, 0, 0, 255}
	target := Color{0, 255, 128, 64}
	g := TweenColor(&c, target, 1.0, ease.Linear)

	g.Update(0.5)
	if c.R < 120 || c.R > 135 {
		t.Errorf("R = %d at halfway", c.R)
	}
	g.Update(0.5)
	if c != target {
		t.Errorf("color = %v, want %v", c, target)
	}
}

func TestTweenColorClampsOvershoot(t *testing.T) {
	c := Color{200, 200, 200, 255}
	g := TweenColor(&c, Color{255, 0, 255, 255}, 1.0, ease.OutBack)
	for i := 0; i < 20 && !g.Done; i++ {
		g.Update(0.1)
	}
	if !g.Done {
		t.Fatal("expected Done")
	}
	if c.R != 255 || c.G != 0 {
		t.Errorf("color = %v", c)
	}
}

func TestTweenGroupDoneAndReset(t *testing.T) {
	radius := float32(1)
	g := TweenFloat(&radius, 5, 0.5, ease.Linear)

	g.Update(0.25)
	if g.Done {
		t.Fatal("Done partway through")
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done")
	}

	// Update after done is a no-op.
	radius = 42
	if !g.Update(0.1) || radius != 42 {
		t.Errorf("finished group wrote %f", radius)
	}

	g.Reset()
	if g.Done {
		t.Fatal("Reset should clear Done")
	}
	g.Update(0)
	if math.Abs(float64(radius-1)) > 0.01 {
		t.Errorf("radius after reset = %f, want ~1", radius)
	}
}
