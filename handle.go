package dioteko

import "runtime"

// Resource is the set of engine descriptors that can be managed by a handle.
type Resource interface {
	RawTexture | RawRenderTexture | RawImage
	Valid() bool
	Size() (width, height int)
	Kind() ResourceKind
}

// resource is the state shared by every Strong and Weak handle of one engine
// resource: the counter block, the descriptor, and the release call.
type resource[T Resource] struct {
	rc     *rcBlock
	raw    T
	owner  *Window // nil for CPU-side images that outlive sessions
	unload func(T)
}

// newHandle wraps a freshly loaded, probed descriptor in its first Strong
// handle. The counter block starts at {strong: 1, weak: 1}.
func newHandle[T Resource](raw T, owner *Window, unload func(T)) *Strong[T] {
	r := &resource[T]{
		rc:     newRcBlock(),
		raw:    raw,
		owner:  owner,
		unload: unload,
	}
	if owner != nil {
		owner.live++
	}
	w, h := raw.Size()
	Logger().Debug("dioteko: resource loaded", "kind", raw.Kind(), "width", w, "height", h)
	return newStrong(r)
}

// Strong is an owning reference to an engine resource. The engine's release
// call fires exactly once, when the last Strong handle is released.
//
// Go has no destructors: every Strong obtained from a loader, Clone or
// Upgrade must be released with Release. A handle is confined to the
// goroutine that owns the window session and must not be copied; pass the
// pointer.
type Strong[T Resource] struct {
	_        noCopy
	res      *resource[T]
	released bool
	cleanup  runtime.Cleanup
}

func newStrong[T Resource](r *resource[T]) *Strong[T] {
	s := &Strong[T]{res: r}
	s.cleanup = runtime.AddCleanup(s, reportLeak, r.raw.Kind())
	return s
}

// reportLeak runs on the runtime's cleanup goroutine, so it only logs.
func reportLeak(kind ResourceKind) {
	Logger().Warn("dioteko: strong handle garbage collected without Release", "kind", kind)
}

func (s *Strong[T]) live(op string) *resource[T] {
	if s.released {
		panic(violation(op, ErrHandleReleased))
	}
	return s.res
}

// Clone returns a new Strong handle sharing the same resource.
func (s *Strong[T]) Clone() *Strong[T] {
	r := s.live("Strong.Clone")
	r.rc.incStrong()
	return newStrong(r)
}

// Downgrade returns a Weak handle observing the same resource.
func (s *Strong[T]) Downgrade() *Weak[T] {
	r := s.live("Strong.Downgrade")
	r.rc.incWeak()
	return &Weak[T]{res: r}
}

// Raw returns the engine descriptor.
func (s *Strong[T]) Raw() T {
	return s.live("Strong.Raw").raw
}

// Width returns the resource width in pixels.
func (s *Strong[T]) Width() int {
	w, _ := s.Raw().Size()
	return w
}

// Height returns the resource height in pixels.
func (s *Strong[T]) Height() int {
	_, h := s.Raw().Size()
	return h
}

// Counts returns the current strong and weak counts of the shared block.
// The weak count includes the implicit reference held by the strong handles.
func (s *Strong[T]) Counts() (strong, weak int) {
	return s.res.rc.strong, s.res.rc.weak
}

// Released reports whether Release has been called on this handle.
func (s *Strong[T]) Released() bool {
	return s.released
}

// Release gives up this handle's ownership. When it was the last Strong
// handle the engine resource is unloaded, then the implicit weak reference
// is dropped. Calling Release again on the same handle does nothing.
//
// If the resource belongs to a session that has already been closed, the
// engine call is skipped (the context that owned it is gone) and a
// *ProtocolViolation is returned.
func (s *Strong[T]) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	s.cleanup.Stop()

	r := s.res
	if r.rc.decStrong() > 0 {
		return nil
	}

	var err error
	kind := r.raw.Kind()
	if r.owner != nil && r.owner.state != StateReady {
		err = violation(kind.String()+".Release", ErrSessionClosed)
	} else {
		r.unload(r.raw)
		if r.owner != nil {
			r.owner.live--
		}
		Logger().Debug("dioteko: resource unloaded", "kind", kind)
	}
	if r.rc.decWeak() {
		Logger().Debug("dioteko: rc block freed", "kind", kind)
	}
	return err
}

// Weak is a non-owning observer of an engine resource. It never keeps the
// resource alive and never calls the engine; Upgrade yields a Strong handle
// only while one still exists.
type Weak[T Resource] struct {
	_        noCopy
	res      *resource[T]
	released bool
}

func (w *Weak[T]) live(op string) *resource[T] {
	if w.released {
		panic(violation(op, ErrHandleReleased))
	}
	return w.res
}

// Upgrade returns a new Strong handle if the resource is still alive.
func (w *Weak[T]) Upgrade() (*Strong[T], bool) {
	r := w.live("Weak.Upgrade")
	if r.rc.strong == 0 {
		return nil, false
	}
	r.rc.incStrong()
	return newStrong(r), true
}

// Clone returns another Weak handle to the same resource.
func (w *Weak[T]) Clone() *Weak[T] {
	r := w.live("Weak.Clone")
	r.rc.incWeak()
	return &Weak[T]{res: r}
}

// Counts returns the current strong and weak counts of the shared block.
func (w *Weak[T]) Counts() (strong, weak int) {
	return w.res.rc.strong, w.res.rc.weak
}

// Release drops this weak reference. The shared block is freed when the
// last reference of any kind is gone. Calling Release again does nothing.
func (w *Weak[T]) Release() {
	if w.released {
		return
	}
	w.released = true
	if w.res.rc.decWeak() {
		Logger().Debug("dioteko: rc block freed", "kind", w.res.raw.Kind())
	}
}

// Handle aliases for the three engine resource families.
type (
	Texture           = Strong[RawTexture]
	WeakTexture       = Weak[RawTexture]
	RenderTexture     = Strong[RawRenderTexture]
	WeakRenderTexture = Weak[RawRenderTexture]
	Image             = Strong[RawImage]
	WeakImage         = Weak[RawImage]
)
