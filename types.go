package dioteko

// Color is an 8-bit straight-alpha RGBA color, the engine's native color
// layout.
type Color struct {
	R, G, B, A uint8
}

// Palette colors matching the engine's built-in definitions.
var (
	LightGray = Color{200, 200, 200, 255}
	Gray      = Color{130, 130, 130, 255}
	DarkGray  = Color{80, 80, 80, 255}
	Yellow    = Color{253, 249, 0, 255}
	Gold      = Color{255, 203, 0, 255}
	Orange    = Color{255, 161, 0, 255}
	Pink      = Color{255, 109, 194, 255}
	Red       = Color{230, 41, 55, 255}
	Maroon    = Color{190, 33, 55, 255}
	Green     = Color{0, 228, 48, 255}
	Lime      = Color{0, 158, 47, 255}
	DarkGreen = Color{0, 117, 44, 255}
	SkyBlue   = Color{102, 191, 255, 255}
	Blue      = Color{0, 121, 241, 255}
	DarkBlue  = Color{0, 82, 172, 255}
	Purple    = Color{200, 122, 255, 255}
	Violet    = Color{135, 60, 190, 255}
	Beige     = Color{211, 176, 131, 255}
	Brown     = Color{127, 106, 79, 255}
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
	Blank     = Color{0, 0, 0, 0}
	Magenta   = Color{255, 0, 255, 255}
	RayWhite  = Color{245, 245, 245, 255}
)

// Fade returns c with its alpha replaced by alpha in [0, 1].
func (c Color) Fade(alpha float32) Color {
	c.A = uint8(clamp01(alpha) * 255)
	return c
}

// Alpha is an alias of Fade kept for parity with the engine's naming.
func (c Color) Alpha(alpha float32) Color {
	return c.Fade(alpha)
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// Vector2 is a 2D vector used for positions and offsets.
type Vector2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v*s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return v.Add(o.Sub(v).Scale(t))
}

// Rectangle is an axis-aligned rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rectangle) Contains(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
