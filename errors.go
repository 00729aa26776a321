package dioteko

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by the typed errors below. Match them with
// errors.Is.
var (
	// ErrInvalidResource means the engine returned an empty descriptor
	// from a load call.
	ErrInvalidResource = errors.New("engine returned an invalid resource")
	// ErrWindowNotReady means the readiness probe failed after window creation.
	ErrWindowNotReady = errors.New("engine context is not ready")
	// ErrSessionActive means another window session is already Ready.
	ErrSessionActive = errors.New("a window session is already active")
	// ErrSessionClosed means the operation needs a Ready session.
	ErrSessionClosed = errors.New("window session is closed")
	// ErrFrameActive means a frame is already open on the session.
	ErrFrameActive = errors.New("a frame is already active")
	// ErrFrameEnded means the painter was used after its frame ended.
	ErrFrameEnded = errors.New("frame has already ended")
	// ErrTextureModeActive means a render-texture bracket is already open.
	ErrTextureModeActive = errors.New("texture mode is already active")
	// ErrHandleReleased means a resource handle was used after Release.
	ErrHandleReleased = errors.New("resource handle already released")
)

// ResourceKind identifies the engine resource family a handle manages.
type ResourceKind int

const (
	// KindTexture is a GPU texture.
	KindTexture ResourceKind = iota
	// KindRenderTexture is a GPU framebuffer with a color texture.
	KindRenderTexture
	// KindImage is a CPU-side pixel buffer owned by the engine.
	KindImage
)

func (k ResourceKind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindRenderTexture:
		return "render texture"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// ResourceLoadError reports a load call whose result failed the validity
// probe. No handle is allocated when it is returned.
type ResourceLoadError struct {
	// Op is the loader that failed (e.g., "dioteko.LoadTexture").
	Op string
	// Kind is the resource family being loaded.
	Kind ResourceKind
	// Source describes what was loaded (a path, "memory", "screen", ...).
	Source string
	// Err is the underlying cause.
	Err error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("%s: load %s from %q: %v", e.Op, e.Kind, e.Source, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

// WindowInitError reports that the engine context never reached the ready
// state. The engine does not roll back a partial initialization, so callers
// should treat it as fatal.
type WindowInitError struct {
	Op            string
	Width, Height int
	Title         string
	Err           error
}

func (e *WindowInitError) Error() string {
	return fmt.Sprintf("%s: init window %dx%d %q: %v", e.Op, e.Width, e.Height, e.Title, e.Err)
}

func (e *WindowInitError) Unwrap() error {
	return e.Err
}

// ProtocolViolation reports a call-order error that the engine itself would
// not detect: a second session, a nested frame, use after close, or use of a
// released handle.
type ProtocolViolation struct {
	Op  string
	Err error
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("%s: protocol violation: %v", e.Op, e.Err)
}

func (e *ProtocolViolation) Unwrap() error {
	return e.Err
}

// violation logs and returns a ProtocolViolation for op.
func violation(op string, err error) *ProtocolViolation {
	Logger().Warn("dioteko: protocol violation", "op", op, "err", err)
	return &ProtocolViolation{Op: op, Err: err}
}
