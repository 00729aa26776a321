package ebitenengine

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/e0328eric/dioteko"
)

// session is one InitWindow..CloseWindow span. The unexported fields below mu
// are shared with Ebitengine's goroutine; the rest belong to the application
// goroutine.
type session struct {
	width, height int
	title         string
	startFlags    dioteko.ConfigFlags

	failed  bool
	started bool
	closed  bool

	screens chan *ebiten.Image // Draw -> BeginDrawing
	ended   chan struct{}      // EndDrawing -> Draw
	ready   chan struct{}      // closed on the first Update
	quit    chan struct{}      // closed by CloseWindow
	exited  chan struct{}      // closed when RunGame returns
	err     error              // RunGame's result, valid once exited is closed

	mu             sync.Mutex
	exitKey        ebiten.Key
	hasExitKey     bool
	closeRequested bool
	outW, outH     int
	resized        bool
	accum          inputAccum
}

func newSession(width, height int, title string) *session {
	return &session{
		width:      width,
		height:     height,
		title:      title,
		screens:    make(chan *ebiten.Image),
		ended:      make(chan struct{}),
		ready:      make(chan struct{}),
		quit:       make(chan struct{}),
		exited:     make(chan struct{}),
		exitKey:    ebiten.KeyEscape,
		hasExitKey: true,
		outW:       width,
		outH:       height,
	}
}

func (s *session) size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outW, s.outH
}

// runOptions maps the flags that Ebitengine only honours at start-up.
func (s *session) runOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		InitUnfocused:     s.startFlags.Has(dioteko.FlagUnfocused),
		ScreenTransparent: s.startFlags.Has(dioteko.FlagTransparent),
		DisableHiDPI:      !s.startFlags.Has(dioteko.FlagHighDPI),
	}
}

// game is the ebiten.Game driven on the main goroutine.
type game struct {
	e         *Engine
	s         *session
	readySent bool
}

func (g *game) Update() error {
	s := g.s
	select {
	case <-s.quit:
		return ebiten.Termination
	case <-g.e.appExited:
		return ebiten.Termination
	default:
	}
	if !g.readySent {
		close(s.ready)
		g.readySent = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accum.collect()
	if s.hasExitKey && inpututil.IsKeyJustPressed(s.exitKey) {
		s.closeRequested = true
	}
	if ebiten.IsWindowBeingClosed() {
		s.closeRequested = true
	}
	return nil
}

// Draw lends the screen to the application for one frame. If the
// application is not waiting in BeginDrawing the tick is skipped; the screen
// keeps its previous contents because clearing is disabled.
func (g *game) Draw(screen *ebiten.Image) {
	s := g.s
	select {
	case s.screens <- screen:
	default:
		return
	}
	select {
	case <-s.ended:
	case <-s.quit:
	case <-g.e.appExited:
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.s
	s.mu.Lock()
	if outsideWidth != s.outW || outsideHeight != s.outH {
		s.outW, s.outH = outsideWidth, outsideHeight
		s.resized = true
	}
	s.mu.Unlock()
	return outsideWidth, outsideHeight
}
