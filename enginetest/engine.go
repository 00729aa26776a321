// Package enginetest provides an in-memory dioteko.Engine that records every
// call, tracks engine-side resources, and reports call-order mistakes that a
// real engine would turn into corruption or crashes.
//
// Typical use:
//
//	e := enginetest.New()
//	win, err := dioteko.NewWindowBuilder(e, 320, 240, "test").Build()
//	...
//	if v := e.Violations(); len(v) != 0 {
//		t.Fatalf("engine protocol violations: %v", v)
//	}
package enginetest

import (
	"fmt"
	"slices"

	"github.com/e0328eric/dioteko"
)

// DefaultImageSize is the size given to images and textures loaded from a
// path that has no size registered with SetImageSize.
const DefaultImageSize = 64

// Engine is a recording dioteko.Engine. The zero value is not usable; call
// New.
type Engine struct {
	calls      []string
	counts     map[string]int
	violations []string

	// FailWindowInit makes the readiness probe fail.
	FailWindowInit bool
	// FailExport makes ExportImage report failure.
	FailExport bool

	failLoads    map[string]bool
	partialLoads map[string]bool
	sizes        map[string][2]int32

	nextID   uint32
	textures map[uint32]dioteko.RawTexture
	targets  map[uint32]dioteko.RawRenderTexture
	images   map[uint32]dioteko.RawImage
	unloads  map[uint32]int
	exported map[string]dioteko.RawImage

	initialized bool
	closed      bool
	width       int
	height      int
	title       string
	flags       dioteko.ConfigFlags
	icon        dioteko.RawImage
	exitKey     dioteko.Key
	targetFPS   int
	shouldClose bool
	closeAfter  int
	resized     bool
	unfocused   bool

	inFrame   bool
	inTexMode bool
	frames    int

	input  inputState
	queue  []inputEvent
	script *Script
}

// New returns an engine with no window, Escape as the exit key and a 60 FPS
// target.
func New() *Engine {
	return &Engine{
		counts:       make(map[string]int),
		failLoads:    make(map[string]bool),
		partialLoads: make(map[string]bool),
		sizes:        make(map[string][2]int32),
		textures:     make(map[uint32]dioteko.RawTexture),
		targets:      make(map[uint32]dioteko.RawRenderTexture),
		images:       make(map[uint32]dioteko.RawImage),
		unloads:      make(map[uint32]int),
		exported:     make(map[string]dioteko.RawImage),
		exitKey:      dioteko.KeyEscape,
		targetFPS:    60,
		input:        newInputState(),
	}
}

var _ dioteko.Engine = (*Engine)(nil)

// --- Recording ---

func (e *Engine) record(name string) {
	e.calls = append(e.calls, name)
	e.counts[name]++
}

func (e *Engine) violate(format string, args ...any) {
	e.violations = append(e.violations, fmt.Sprintf(format, args...))
}

// Calls returns every engine call in issue order.
func (e *Engine) Calls() []string {
	return slices.Clone(e.calls)
}

// Count returns how many times the named call was issued.
func (e *Engine) Count(name string) int {
	return e.counts[name]
}

// Violations returns the call-order errors observed so far.
func (e *Engine) Violations() []string {
	return slices.Clone(e.violations)
}

// --- Configuration ---

// FailLoad makes loads from source return a zeroed descriptor. source is a
// file path, or one of "memory", "screen", "texture", "image", "render".
func (e *Engine) FailLoad(source string) {
	e.failLoads[source] = true
}

// FailLoadPartial makes loads from source return a descriptor that has an ID
// but zero dimensions, the way some drivers fail. The ID is registered and
// must be unloaded.
func (e *Engine) FailLoadPartial(source string) {
	e.partialLoads[source] = true
}

// SetImageSize sets the dimensions reported for files loaded from path.
func (e *Engine) SetImageSize(path string, width, height int) {
	e.sizes[path] = [2]int32{int32(width), int32(height)}
}

// CloseAfter makes WindowShouldClose report true once n frames have ended.
func (e *Engine) CloseAfter(n int) {
	e.closeAfter = n
}

// --- Inspection ---

// Flags returns the mask last passed to SetWindowState.
func (e *Engine) Flags() dioteko.ConfigFlags { return e.flags }

// Icon returns the image last passed to SetWindowIcon.
func (e *Engine) Icon() dioteko.RawImage { return e.icon }

// ExitKey returns the configured exit key.
func (e *Engine) ExitKey() dioteko.Key { return e.exitKey }

// TargetFPS returns the configured frame rate.
func (e *Engine) TargetFPS() int { return e.targetFPS }

// Title returns the title passed to InitWindow.
func (e *Engine) Title() string { return e.title }

// Frames returns the number of EndDrawing calls.
func (e *Engine) Frames() int { return e.frames }

// InFrame reports whether a BeginDrawing is waiting for its EndDrawing.
func (e *Engine) InFrame() bool { return e.inFrame }

// LiveTextures returns the number of loaded textures, excluding the color
// buffers of render textures.
func (e *Engine) LiveTextures() int { return len(e.textures) }

// LiveRenderTextures returns the number of loaded render textures.
func (e *Engine) LiveRenderTextures() int { return len(e.targets) }

// LiveImages returns the number of loaded images.
func (e *Engine) LiveImages() int { return len(e.images) }

// UnloadCount returns how many times the resource with the given ID was
// unloaded. Anything other than 0 or 1 is also reported as a violation.
func (e *Engine) UnloadCount(id uint32) int { return e.unloads[id] }

// Exported returns the image written to fileName by ExportImage.
func (e *Engine) Exported(fileName string) (dioteko.RawImage, bool) {
	img, ok := e.exported[fileName]
	return img, ok
}

// --- Window ---

func (e *Engine) requireWindow(call string) {
	if !e.initialized || e.closed {
		e.violate("%s without a live window", call)
	}
}

func (e *Engine) InitWindow(width, height int, title string) {
	e.record("InitWindow")
	if e.initialized && !e.closed {
		e.violate("InitWindow while a window is live")
	}
	e.initialized = true
	e.closed = false
	e.width, e.height, e.title = width, height, title
	e.shouldClose = false
	e.frames = 0
}

func (e *Engine) CloseWindow() {
	e.record("CloseWindow")
	e.requireWindow("CloseWindow")
	if e.inFrame {
		e.violate("CloseWindow inside a frame")
	}
	e.closed = true
}

func (e *Engine) IsWindowReady() bool {
	e.record("IsWindowReady")
	return e.initialized && !e.closed && !e.FailWindowInit
}

func (e *Engine) WindowShouldClose() bool {
	e.record("WindowShouldClose")
	e.requireWindow("WindowShouldClose")
	if e.closeAfter > 0 && e.frames >= e.closeAfter {
		return true
	}
	if e.exitKey != dioteko.KeyNull && e.input.keyPressed[e.exitKey] {
		return true
	}
	return e.shouldClose
}

func (e *Engine) SetWindowState(flags dioteko.ConfigFlags) {
	e.record("SetWindowState")
	e.requireWindow("SetWindowState")
	e.flags = flags
	e.unfocused = flags.Has(dioteko.FlagUnfocused)
}

func (e *Engine) GetWindowState() dioteko.ConfigFlags {
	e.record("GetWindowState")
	return e.flags
}

func (e *Engine) SetWindowIcon(icon dioteko.RawImage) {
	e.record("SetWindowIcon")
	e.requireWindow("SetWindowIcon")
	if _, ok := e.images[icon.ID]; !ok {
		e.violate("SetWindowIcon with unknown image %d", icon.ID)
	}
	e.icon = icon
}

func (e *Engine) SetExitKey(key dioteko.Key) {
	e.record("SetExitKey")
	e.exitKey = key
}

func (e *Engine) GetScreenWidth() int {
	e.record("GetScreenWidth")
	return e.width
}

func (e *Engine) GetScreenHeight() int {
	e.record("GetScreenHeight")
	return e.height
}

func (e *Engine) IsWindowFullscreen() bool {
	e.record("IsWindowFullscreen")
	return e.flags.Has(dioteko.FlagFullscreen)
}

func (e *Engine) IsWindowHidden() bool {
	e.record("IsWindowHidden")
	return e.flags.Has(dioteko.FlagHidden)
}

func (e *Engine) IsWindowMinimized() bool {
	e.record("IsWindowMinimized")
	return e.flags.Has(dioteko.FlagMinimized)
}

func (e *Engine) IsWindowMaximized() bool {
	e.record("IsWindowMaximized")
	return e.flags.Has(dioteko.FlagMaximized)
}

func (e *Engine) IsWindowFocused() bool {
	e.record("IsWindowFocused")
	return !e.unfocused
}

func (e *Engine) IsWindowResized() bool {
	e.record("IsWindowResized")
	return e.resized
}

func (e *Engine) SetTargetFPS(fps int) {
	e.record("SetTargetFPS")
	e.targetFPS = fps
}

func (e *Engine) GetFPS() int {
	e.record("GetFPS")
	return e.targetFPS
}

func (e *Engine) GetFrameTime() float32 {
	e.record("GetFrameTime")
	if e.targetFPS <= 0 {
		return 0
	}
	return 1 / float32(e.targetFPS)
}

func (e *Engine) GetTime() float64 {
	e.record("GetTime")
	if e.targetFPS <= 0 {
		return 0
	}
	return float64(e.frames) / float64(e.targetFPS)
}

// --- Frame ---

func (e *Engine) BeginDrawing() {
	e.record("BeginDrawing")
	e.requireWindow("BeginDrawing")
	if e.inFrame {
		e.violate("BeginDrawing inside a frame")
	}
	e.inFrame = true
}

func (e *Engine) EndDrawing() {
	e.record("EndDrawing")
	if !e.inFrame {
		e.violate("EndDrawing without BeginDrawing")
	}
	if e.inTexMode {
		e.violate("EndDrawing inside texture mode")
	}
	e.inFrame = false
	e.frames++
	e.endFrame()
}

func (e *Engine) BeginTextureMode(target dioteko.RawRenderTexture) {
	e.record("BeginTextureMode")
	e.requireFrame("BeginTextureMode")
	if e.inTexMode {
		e.violate("BeginTextureMode inside texture mode")
	}
	if _, ok := e.targets[target.ID]; !ok {
		e.violate("BeginTextureMode with unknown render texture %d", target.ID)
	}
	e.inTexMode = true
}

func (e *Engine) EndTextureMode() {
	e.record("EndTextureMode")
	if !e.inTexMode {
		e.violate("EndTextureMode without BeginTextureMode")
	}
	e.inTexMode = false
}

func (e *Engine) requireFrame(call string) {
	if !e.inFrame {
		e.violate("%s outside a frame", call)
	}
}

func (e *Engine) draw(call string) {
	e.record(call)
	e.requireFrame(call)
}

func (e *Engine) ClearBackground(dioteko.Color)                       { e.draw("ClearBackground") }
func (e *Engine) DrawPixelV(dioteko.Vector2, dioteko.Color)           { e.draw("DrawPixelV") }
func (e *Engine) DrawLineV(_, _ dioteko.Vector2, _ dioteko.Color)     { e.draw("DrawLineV") }
func (e *Engine) DrawCircleV(dioteko.Vector2, float32, dioteko.Color) { e.draw("DrawCircleV") }
func (e *Engine) DrawRectangleRec(dioteko.Rectangle, dioteko.Color)   { e.draw("DrawRectangleRec") }
func (e *Engine) DrawText(string, int, int, int, dioteko.Color)       { e.draw("DrawText") }

func (e *Engine) DrawTextureV(tex dioteko.RawTexture, _ dioteko.Vector2, _ dioteko.Color) {
	e.draw("DrawTextureV")
	e.requireTexture("DrawTextureV", tex.ID)
}

func (e *Engine) DrawTextureRec(tex dioteko.RawTexture, _ dioteko.Rectangle, _ dioteko.Vector2, _ dioteko.Color) {
	e.draw("DrawTextureRec")
	e.requireTexture("DrawTextureRec", tex.ID)
}

func (e *Engine) requireTexture(call string, id uint32) {
	if _, ok := e.textures[id]; ok {
		return
	}
	for _, rt := range e.targets {
		if rt.Texture.ID == id {
			return
		}
	}
	e.violate("%s with unknown texture %d", call, id)
}
