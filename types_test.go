package dioteko

import (
	"image/color"
	"testing"
)

// --- Rectangle.Contains ---

func TestRectangleContains(t *testing.T) {
	r := Rectangle{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float32
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(Vector2{tt.x, tt.y})
			if got != tt.expect {
				t.Errorf("Rectangle%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rectangle.Intersects ---

func TestRectangleIntersects(t *testing.T) {
	base := Rectangle{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rectangle
		expect bool
	}{
		{"overlapping", Rectangle{50, 50, 100, 100}, true},
		{"fully contained", Rectangle{20, 20, 10, 10}, true},
		{"containing", Rectangle{0, 0, 200, 200}, true},
		{"adjacent right", Rectangle{110, 10, 50, 50}, true},
		{"disjoint right", Rectangle{111, 10, 50, 50}, false},
		{"disjoint above", Rectangle{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.expect)
			}
			if got := tt.other.Intersects(base); got != tt.expect {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

// --- Color ---

func TestColorFade(t *testing.T) {
	tests := []struct {
		alpha float32
		want  uint8
	}{
		{1, 255},
		{0, 0},
		{0.5, 127},
		{-3, 0},
		{7, 255},
	}
	for _, tt := range tests {
		if got := Red.Fade(tt.alpha); got.A != tt.want || got.R != Red.R {
			t.Errorf("Red.Fade(%v) = %v, want alpha %d", tt.alpha, got, tt.want)
		}
	}
	if Red.Alpha(0.5) != Red.Fade(0.5) {
		t.Error("Alpha should match Fade")
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	var c color.Color = Color{255, 128, 0, 255}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("opaque RGBA = %x %x %x %x", r, g, b, a)
	}

	r, _, _, a = Color{255, 0, 0, 0}.RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent RGBA = %x, %x; want 0, 0", r, a)
	}
}

// --- Vector2 ---

func TestVector2(t *testing.T) {
	a := Vector2{1, 2}
	b := Vector2{4, 6}
	if got := a.Add(b); got != (Vector2{5, 8}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vector2{3, 4}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vector2{2, 4}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vector2{2.5, 4}) {
		t.Errorf("Lerp = %v", got)
	}
}
