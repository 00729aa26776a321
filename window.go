package dioteko

import (
	"sync/atomic"
)

// SessionState is the lifecycle state of a window session.
// Transitions are one-way: Uninitialized → Ready → Closed.
type SessionState uint8

const (
	StateUninitialized SessionState = iota // builder not yet built
	StateReady                             // engine context created and probed
	StateClosed                            // context destroyed; terminal
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// sessionActive is the process-wide guard: the engine context is global, so
// at most one Ready Window may exist. It is acquired by Build and released by
// Close.
var sessionActive atomic.Bool

// WindowBuilder accumulates the window configuration. Flag methods OR their
// bit into the mask; nothing is validated.
type WindowBuilder struct {
	engine    Engine
	width     int
	height    int
	title     string
	icon      *Image
	exitKey   *Key
	targetFPS int
	flags     ConfigFlags
}

// NewWindowBuilder starts a window configuration for the given engine.
func NewWindowBuilder(engine Engine, width, height int, title string) *WindowBuilder {
	return &WindowBuilder{
		engine: engine,
		width:  width,
		height: height,
		title:  title,
	}
}

// WithIcon sets the window icon. The image is borrowed only during Build;
// the caller keeps ownership and may release it afterwards.
func (b *WindowBuilder) WithIcon(icon *Image) *WindowBuilder {
	b.icon = icon
	return b
}

// WithExitKey sets the key that makes ShouldClose report true. KeyNull
// disables the exit key.
func (b *WindowBuilder) WithExitKey(key Key) *WindowBuilder {
	b.exitKey = &key
	return b
}

// WithTargetFPS sets the target frame rate. Zero leaves the engine default.
func (b *WindowBuilder) WithTargetFPS(fps int) *WindowBuilder {
	b.targetFPS = fps
	return b
}

// WithFlags ORs an arbitrary mask into the configuration.
func (b *WindowBuilder) WithFlags(flags ConfigFlags) *WindowBuilder {
	b.flags |= flags
	return b
}

func (b *WindowBuilder) WithVsyncHint() *WindowBuilder      { return b.WithFlags(FlagVsyncHint) }
func (b *WindowBuilder) WithFullscreen() *WindowBuilder     { return b.WithFlags(FlagFullscreen) }
func (b *WindowBuilder) WithResizable() *WindowBuilder      { return b.WithFlags(FlagResizable) }
func (b *WindowBuilder) WithUndecorated() *WindowBuilder    { return b.WithFlags(FlagUndecorated) }
func (b *WindowBuilder) WithHidden() *WindowBuilder         { return b.WithFlags(FlagHidden) }
func (b *WindowBuilder) WithMinimized() *WindowBuilder      { return b.WithFlags(FlagMinimized) }
func (b *WindowBuilder) WithMaximized() *WindowBuilder      { return b.WithFlags(FlagMaximized) }
func (b *WindowBuilder) WithUnfocused() *WindowBuilder      { return b.WithFlags(FlagUnfocused) }
func (b *WindowBuilder) WithTopmost() *WindowBuilder        { return b.WithFlags(FlagTopmost) }
func (b *WindowBuilder) WithAlwaysRun() *WindowBuilder      { return b.WithFlags(FlagAlwaysRun) }
func (b *WindowBuilder) WithTransparent() *WindowBuilder    { return b.WithFlags(FlagTransparent) }
func (b *WindowBuilder) WithHighDPI() *WindowBuilder        { return b.WithFlags(FlagHighDPI) }
func (b *WindowBuilder) WithMSAA4x() *WindowBuilder         { return b.WithFlags(FlagMSAA4x) }
func (b *WindowBuilder) WithInterlacedHint() *WindowBuilder { return b.WithFlags(FlagInterlacedHint) }

// Flags returns the mask accumulated so far.
func (b *WindowBuilder) Flags() ConfigFlags {
	return b.flags
}

// Build creates the engine context, applies the flags, probes readiness, and
// then applies the icon, exit key and target frame rate.
//
// It returns a *ProtocolViolation wrapping ErrSessionActive if another
// session is Ready or ErrHandleReleased if the icon was already released,
// and a *WindowInitError if the readiness probe fails. The
// engine does not roll back a failed initialization; callers should exit.
func (b *WindowBuilder) Build() (*Window, error) {
	const op = "dioteko.WindowBuilder.Build"
	if b.icon != nil && b.icon.Released() {
		return nil, violation(op, ErrHandleReleased)
	}
	if !sessionActive.CompareAndSwap(false, true) {
		return nil, violation(op, ErrSessionActive)
	}

	e := b.engine
	e.InitWindow(b.width, b.height, b.title)
	e.SetWindowState(b.flags)

	if !e.IsWindowReady() {
		sessionActive.Store(false)
		Logger().Warn("dioteko: window init failed", "width", b.width, "height", b.height, "title", b.title)
		return nil, &WindowInitError{Op: op, Width: b.width, Height: b.height, Title: b.title, Err: ErrWindowNotReady}
	}

	if b.icon != nil {
		e.SetWindowIcon(b.icon.Raw())
	}
	if b.exitKey != nil {
		e.SetExitKey(*b.exitKey)
	}
	if b.targetFPS > 0 {
		e.SetTargetFPS(b.targetFPS)
	}

	Logger().Info("dioteko: window session ready",
		"width", b.width, "height", b.height, "title", b.title, "flags", b.flags)

	return &Window{
		engine: e,
		width:  b.width,
		height: b.height,
		title:  b.title,
		flags:  b.flags,
		state:  StateReady,
	}, nil
}

// Window is the single live engine context. It is not safe for concurrent
// use; all calls must come from the goroutine that built it.
//
// Every Ready-only method panics with a *ProtocolViolation once the window is
// closed, except those that already return an error.
type Window struct {
	_       noCopy
	engine  Engine
	width   int
	height  int
	title   string
	flags   ConfigFlags
	state   SessionState
	painter *Painter // live frame, nil between frames
	live    int      // GPU handles whose resource is still loaded
	debug   bool
	frames  uint64
}

func (w *Window) checkReady(op string) error {
	if w.state != StateReady {
		return violation(op, ErrSessionClosed)
	}
	return nil
}

func (w *Window) mustReady(op string) Engine {
	if err := w.checkReady(op); err != nil {
		panic(err)
	}
	return w.engine
}

// --- Queries ---

// State returns the session lifecycle state. It is valid after Close.
func (w *Window) State() SessionState {
	return w.state
}

// Width returns the width the window was created with.
func (w *Window) Width() int {
	w.mustReady("Window.Width")
	return w.width
}

// Height returns the height the window was created with.
func (w *Window) Height() int {
	w.mustReady("Window.Height")
	return w.height
}

// Title returns the window title.
func (w *Window) Title() string {
	w.mustReady("Window.Title")
	return w.title
}

// Flags returns the mask last pushed to the engine.
func (w *Window) Flags() ConfigFlags {
	w.mustReady("Window.Flags")
	return w.flags
}

// LiveResources returns the number of GPU handles whose resource is still
// loaded in this session.
func (w *Window) LiveResources() int {
	return w.live
}

// ShouldClose reports whether the user asked to close the window (close
// button or exit key).
func (w *Window) ShouldClose() bool {
	return w.mustReady("Window.ShouldClose").WindowShouldClose()
}

// IsReady re-runs the engine's readiness probe.
func (w *Window) IsReady() bool {
	return w.mustReady("Window.IsReady").IsWindowReady()
}

func (w *Window) IsFullscreen() bool {
	return w.mustReady("Window.IsFullscreen").IsWindowFullscreen()
}

func (w *Window) IsHidden() bool {
	return w.mustReady("Window.IsHidden").IsWindowHidden()
}

func (w *Window) IsMinimized() bool {
	return w.mustReady("Window.IsMinimized").IsWindowMinimized()
}

func (w *Window) IsMaximized() bool {
	return w.mustReady("Window.IsMaximized").IsWindowMaximized()
}

func (w *Window) IsFocused() bool {
	return w.mustReady("Window.IsFocused").IsWindowFocused()
}

// IsResized reports whether the window was resized since the last frame.
func (w *Window) IsResized() bool {
	return w.mustReady("Window.IsResized").IsWindowResized()
}

// ScreenWidth returns the current framebuffer width reported by the engine.
func (w *Window) ScreenWidth() int {
	return w.mustReady("Window.ScreenWidth").GetScreenWidth()
}

// ScreenHeight returns the current framebuffer height reported by the engine.
func (w *Window) ScreenHeight() int {
	return w.mustReady("Window.ScreenHeight").GetScreenHeight()
}

// FPS returns the measured frame rate.
func (w *Window) FPS() int {
	return w.mustReady("Window.FPS").GetFPS()
}

// FrameTime returns the duration of the last frame in seconds.
func (w *Window) FrameTime() float32 {
	return w.mustReady("Window.FrameTime").GetFrameTime()
}

// Time returns seconds elapsed since the window was created.
func (w *Window) Time() float64 {
	return w.mustReady("Window.Time").GetTime()
}

// --- Mutators ---

// ToggleFullscreen sets the fullscreen bit and pushes the mask. It never
// clears the bit; Restore does not clear it either.
func (w *Window) ToggleFullscreen() error {
	return w.pushState("Window.ToggleFullscreen", w.flags.Set(FlagFullscreen))
}

// Maximize sets the maximized bit and pushes the mask.
func (w *Window) Maximize() error {
	return w.pushState("Window.Maximize", w.flags.Set(FlagMaximized))
}

// Minimize sets the minimized bit and pushes the mask.
func (w *Window) Minimize() error {
	return w.pushState("Window.Minimize", w.flags.Set(FlagMinimized))
}

// Restore clears exactly the maximized and minimized bits and pushes the
// mask. The fullscreen bit is left as it is.
func (w *Window) Restore() error {
	return w.pushState("Window.Restore", w.flags.Clear(FlagMaximized|FlagMinimized))
}

// SetTargetFPS changes the target frame rate.
func (w *Window) SetTargetFPS(fps int) error {
	if err := w.checkReady("Window.SetTargetFPS"); err != nil {
		return err
	}
	w.engine.SetTargetFPS(fps)
	return nil
}

// SetDebugMode enables per-frame statistics logged at debug level.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}

func (w *Window) pushState(op string, flags ConfigFlags) error {
	if err := w.checkReady(op); err != nil {
		return err
	}
	w.flags = flags
	w.engine.SetWindowState(flags)
	return nil
}

// --- Close ---

// Close destroys the engine context. It must be called exactly once, after
// the last frame has ended; a second call, or a call while a frame is live,
// returns a *ProtocolViolation and does nothing.
//
// GPU handles still alive at Close are invalidated: their Release skips the
// engine call and reports ErrSessionClosed.
func (w *Window) Close() error {
	const op = "Window.Close"
	if err := w.checkReady(op); err != nil {
		return err
	}
	if w.painter != nil {
		return violation(op, ErrFrameActive)
	}
	if w.live > 0 {
		Logger().Warn("dioteko: closing window with live GPU resources", "count", w.live)
	}
	w.engine.CloseWindow()
	w.state = StateClosed
	sessionActive.Store(false)
	Logger().Info("dioteko: window session closed", "frames", w.frames)
	return nil
}
