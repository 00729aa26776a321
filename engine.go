package dioteko

// PixelFormat is the engine's pixel format enumeration.
type PixelFormat int32

const (
	PixelFormatGrayscale PixelFormat = 1
	PixelFormatGrayAlpha PixelFormat = 2
	PixelFormatR5G6B5    PixelFormat = 3
	PixelFormatR8G8B8    PixelFormat = 4
	PixelFormatR5G5B5A1  PixelFormat = 5
	PixelFormatR4G4B4A4  PixelFormat = 6
	PixelFormatR8G8B8A8  PixelFormat = 7
)

// RawTexture is the engine's descriptor for a GPU texture. It is a plain
// value; copying it does not copy or retain the texture.
type RawTexture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Valid is the post-load probe: the engine reports failure by returning a
// zeroed descriptor.
func (t RawTexture) Valid() bool {
	return t.ID != 0 && t.Width > 0 && t.Height > 0
}

// Size returns the texture dimensions in pixels.
func (t RawTexture) Size() (width, height int) {
	return int(t.Width), int(t.Height)
}

// Kind reports KindTexture.
func (RawTexture) Kind() ResourceKind { return KindTexture }

// RawRenderTexture is the engine's descriptor for an offscreen framebuffer.
type RawRenderTexture struct {
	ID      uint32
	Texture RawTexture // color buffer
	Depth   RawTexture // depth buffer; may be zero on backends without one
}

// Valid reports whether the framebuffer and its color buffer were created.
func (r RawRenderTexture) Valid() bool {
	return r.ID != 0 && r.Texture.Valid()
}

// Size returns the color buffer dimensions in pixels.
func (r RawRenderTexture) Size() (width, height int) {
	return r.Texture.Size()
}

// Kind reports KindRenderTexture.
func (RawRenderTexture) Kind() ResourceKind { return KindRenderTexture }

// RawImage is the engine's descriptor for a CPU-side pixel buffer.
type RawImage struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Valid reports whether the image holds pixel data.
func (i RawImage) Valid() bool {
	return i.ID != 0 && i.Width > 0 && i.Height > 0
}

// Size returns the image dimensions in pixels.
func (i RawImage) Size() (width, height int) {
	return int(i.Width), int(i.Height)
}

// Kind reports KindImage.
func (RawImage) Kind() ResourceKind { return KindImage }

// WindowEngine is the engine's window and context lifecycle surface. All
// calls are synchronous and report failure only through boolean probes.
type WindowEngine interface {
	InitWindow(width, height int, title string)
	CloseWindow()
	IsWindowReady() bool
	WindowShouldClose() bool

	// SetWindowState applies the full flag mask in one call.
	SetWindowState(flags ConfigFlags)
	GetWindowState() ConfigFlags
	SetWindowIcon(icon RawImage)
	SetExitKey(key Key)

	GetScreenWidth() int
	GetScreenHeight() int
	IsWindowFullscreen() bool
	IsWindowHidden() bool
	IsWindowMinimized() bool
	IsWindowMaximized() bool
	IsWindowFocused() bool
	IsWindowResized() bool

	SetTargetFPS(fps int)
	GetFPS() int
	GetFrameTime() float32
	GetTime() float64
}

// Canvas is the frame bracket and the drawing capability offered inside it.
// Drawing calls outside BeginDrawing/EndDrawing are undefined behavior in
// the engine; Painter is the only caller.
type Canvas interface {
	BeginDrawing()
	EndDrawing()
	BeginTextureMode(target RawRenderTexture)
	EndTextureMode()

	ClearBackground(c Color)
	DrawPixelV(pos Vector2, c Color)
	DrawLineV(start, end Vector2, c Color)
	DrawCircleV(center Vector2, radius float32, c Color)
	DrawRectangleRec(rec Rectangle, c Color)
	DrawText(text string, x, y, fontSize int, c Color)
	DrawTextureV(tex RawTexture, pos Vector2, tint Color)
	DrawTextureRec(tex RawTexture, src Rectangle, pos Vector2, tint Color)
}

// ResourceEngine creates and destroys engine-owned resources. Loads never
// return errors: a failed load yields a zeroed descriptor.
type ResourceEngine interface {
	LoadTexture(path string) RawTexture
	LoadTextureFromImage(img RawImage) RawTexture
	UnloadTexture(tex RawTexture)

	LoadRenderTexture(width, height int) RawRenderTexture
	UnloadRenderTexture(target RawRenderTexture)

	LoadImage(path string) RawImage
	LoadImageFromMemory(fileType string, data []byte) RawImage
	LoadImageFromTexture(tex RawTexture) RawImage
	LoadImageFromScreen() RawImage
	ImageCopy(img RawImage) RawImage
	UnloadImage(img RawImage)

	// ExportImage writes img to fileName, choosing the encoder from the
	// extension. It reports whether the file was written.
	ExportImage(img RawImage, fileName string) bool
}

// InputEngine is the stateless keyboard and mouse poll surface.
type InputEngine interface {
	IsKeyPressed(key Key) bool
	IsKeyDown(key Key) bool
	IsKeyReleased(key Key) bool
	IsKeyUp(key Key) bool
	GetKeyPressed() Key
	GetCharPressed() rune

	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonDown(button MouseButton) bool
	IsMouseButtonReleased(button MouseButton) bool
	IsMouseButtonUp(button MouseButton) bool
	GetMousePosition() Vector2
	GetMouseDelta() Vector2
	GetMouseWheelMove() float32
	SetMousePosition(x, y int)
}

// Engine is the complete native call surface wrapped by this package. It is
// not safe for concurrent use: every call must come from the goroutine that
// created the window.
type Engine interface {
	WindowEngine
	Canvas
	ResourceEngine
	InputEngine
}
