// Package ebitenengine implements dioteko.Engine on top of Ebitengine.
//
// Ebitengine owns the main goroutine and calls back into a Game, while
// dioteko expects an immediate-mode engine driven by the application. Run
// bridges the two: the application runs on its own goroutine and every
// dioteko frame is matched to one Ebitengine Draw call.
//
//	func main() {
//		if err := ebitenengine.Run(app); err != nil {
//			log.Fatal(err)
//		}
//	}
//
//	func app(e *ebitenengine.Engine) error {
//		win, err := dioteko.NewWindowBuilder(e, 800, 450, "demo").Build()
//		...
//	}
package ebitenengine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/e0328eric/dioteko"
)

const defaultTPS = 60

type options struct {
	tps  int
	font []byte
}

// Option configures Run.
type Option func(*options)

// WithTPS sets Ebitengine's update rate. Input edges are sampled at this
// rate. The default is 60.
func WithTPS(tps int) Option {
	return func(o *options) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// WithFont replaces the default Go Regular face used by DrawText with the
// given TrueType or OpenType data.
func WithFont(ttf []byte) Option {
	return func(o *options) {
		o.font = ttf
	}
}

// Engine is the Ebitengine-backed dioteko.Engine. It is created by Run and
// must only be used from the application goroutine Run starts.
type Engine struct {
	opts options

	ids      idSource
	textures registry[*ebiten.Image]
	targets  registry[*renderTarget]
	images   registry[*image.NRGBA]
	pool     targetPool

	fontSource *text.GoTextFaceSource
	faces      map[int]*text.GoTextFace

	startReq  chan *session
	appExited chan struct{}
	sess      *session

	screen    *ebiten.Image
	canvas    *ebiten.Image
	antialias bool
	flags     dioteko.ConfigFlags
	targetFPS int

	input   frameInput
	resized bool

	start     time.Time
	lastEnd   time.Time
	frameTime float32
	fps       fpsCounter
}

var _ dioteko.Engine = (*Engine)(nil)

type renderTarget struct {
	img   *ebiten.Image
	texID uint32
}

func newEngine(opts ...Option) (*Engine, error) {
	o := options{tps: defaultTPS, font: goregular.TTF}
	for _, opt := range opts {
		opt(&o)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(o.font))
	if err != nil {
		return nil, fmt.Errorf("ebitenengine: load font: %w", err)
	}
	return &Engine{
		opts:       o,
		textures:   newRegistry[*ebiten.Image](),
		targets:    newRegistry[*renderTarget](),
		images:     newRegistry[*image.NRGBA](),
		fontSource: src,
		faces:      make(map[int]*text.GoTextFace),
		startReq:   make(chan *session),
		appExited:  make(chan struct{}),
		input:      newFrameInput(),
	}, nil
}

// appPanic carries a panic from the application goroutine to Run so it is
// re-raised on the main goroutine.
type appPanic struct {
	value any
	stack []byte
}

func (p *appPanic) Error() string {
	return fmt.Sprintf("ebitenengine: application panicked: %v\n%s", p.value, p.stack)
}

// Run starts app on a new goroutine and serves its windows on the calling
// goroutine, which must be the main goroutine. It returns app's error once
// app returns. A panic in app is re-raised here.
//
// Some platforms allow Ebitengine to run only once per process; on those a
// second window after Close fails its readiness probe.
func Run(app func(*Engine) error, opts ...Option) error {
	e, err := newEngine(opts...)
	if err != nil {
		return err
	}

	appDone := make(chan error, 1)
	go func() {
		defer close(e.appExited)
		defer func() {
			if r := recover(); r != nil {
				appDone <- &appPanic{value: r, stack: debug.Stack()}
			}
		}()
		appDone <- app(e)
	}()

	for {
		select {
		case s := <-e.startReq:
			dioteko.Logger().Debug("ebitenengine: starting game loop",
				"width", s.width, "height", s.height, "title", s.title)
			s.err = ebiten.RunGameWithOptions(&game{e: e, s: s}, s.runOptions())
			close(s.exited)
			if s.err != nil {
				dioteko.Logger().Warn("ebitenengine: game loop failed", "err", s.err)
			}
		case err := <-appDone:
			var p *appPanic
			if errors.As(err, &p) {
				panic(p)
			}
			return err
		}
	}
}

// --- Window ---

func (e *Engine) InitWindow(width, height int, title string) {
	if e.sess != nil && !e.sess.closed {
		dioteko.Logger().Warn("ebitenengine: InitWindow while a window is open")
		return
	}
	e.sess = newSession(width, height, title)
	e.flags = 0
	e.targetFPS = 0
	e.resized = false
	e.input = newFrameInput()
	e.start = time.Now()
	e.lastEnd = e.start

	if width <= 0 || height <= 0 {
		e.sess.failed = true
		return
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(e.opts.tps)
}

// IsWindowReady starts the game loop on first call and waits for its first
// tick.
func (e *Engine) IsWindowReady() bool {
	s := e.sess
	if s == nil || s.failed || s.closed {
		return false
	}
	if !s.started {
		s.started = true
		s.startFlags = e.flags
		e.startReq <- s
		select {
		case <-s.ready:
			e.poll()
			return true
		case <-s.exited:
			return false
		}
	}
	return isClosed(s.ready) && !isClosed(s.exited)
}

func (e *Engine) CloseWindow() {
	s := e.sess
	if s == nil || s.closed {
		return
	}
	if s.started {
		close(s.quit)
		<-s.exited
	}
	s.closed = true
	e.screen, e.canvas = nil, nil

	freed := e.textures.count() + e.targets.count() + e.pool.len()
	e.textures.drain(func(_ uint32, img *ebiten.Image) { img.Deallocate() })
	e.targets.drain(func(_ uint32, rt *renderTarget) { rt.img.Deallocate() })
	e.pool.dispose()
	if freed > 0 {
		dioteko.Logger().Debug("ebitenengine: freed GPU images on close", "count", freed)
	}
}

func (e *Engine) WindowShouldClose() bool {
	s := e.sess
	if s == nil || isClosed(s.exited) {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeRequested
}

func (e *Engine) SetWindowState(flags dioteko.ConfigFlags) {
	prev := e.flags
	e.flags = flags
	applyFlags(prev, flags)
	e.antialias = flags.Has(dioteko.FlagMSAA4x)
}

func (e *Engine) GetWindowState() dioteko.ConfigFlags {
	return e.flags
}

func (e *Engine) SetWindowIcon(icon dioteko.RawImage) {
	img, ok := e.images.lookup(icon.ID)
	if !ok {
		return
	}
	ebiten.SetWindowIcon([]image.Image{cloneNRGBA(img)})
}

func (e *Engine) SetExitKey(key dioteko.Key) {
	s := e.sess
	if s == nil {
		return
	}
	eb, ok := toEbitenKey[key]
	s.mu.Lock()
	s.exitKey, s.hasExitKey = eb, ok
	s.mu.Unlock()
}

func (e *Engine) GetScreenWidth() int {
	if e.sess == nil {
		return 0
	}
	w, _ := e.sess.size()
	return w
}

func (e *Engine) GetScreenHeight() int {
	if e.sess == nil {
		return 0
	}
	_, h := e.sess.size()
	return h
}

func (e *Engine) IsWindowFullscreen() bool { return ebiten.IsFullscreen() }
func (e *Engine) IsWindowHidden() bool     { return e.flags.Has(dioteko.FlagHidden) }
func (e *Engine) IsWindowMinimized() bool  { return ebiten.IsWindowMinimized() }
func (e *Engine) IsWindowMaximized() bool  { return ebiten.IsWindowMaximized() }
func (e *Engine) IsWindowFocused() bool    { return ebiten.IsFocused() }
func (e *Engine) IsWindowResized() bool    { return e.resized }

func (e *Engine) SetTargetFPS(fps int) {
	e.targetFPS = fps
}

func (e *Engine) GetFPS() int {
	return e.fps.rate
}

func (e *Engine) GetFrameTime() float32 {
	return e.frameTime
}

func (e *Engine) GetTime() float64 {
	return time.Since(e.start).Seconds()
}

// --- Frame ---

// BeginDrawing blocks until Ebitengine's next Draw hands over the screen.
// If the game loop has ended the frame has no screen and draws are dropped.
func (e *Engine) BeginDrawing() {
	s := e.sess
	e.screen = nil
	if s != nil && s.started {
		select {
		case scr := <-s.screens:
			e.screen = scr
		case <-s.exited:
		}
	}
	e.canvas = e.screen
}

// EndDrawing returns the screen to Ebitengine, paces to the target frame
// rate and samples input for the next frame.
func (e *Engine) EndDrawing() {
	s := e.sess
	if e.screen != nil {
		select {
		case s.ended <- struct{}{}:
		case <-s.exited:
		}
	}
	e.screen, e.canvas = nil, nil

	now := time.Now()
	if e.targetFPS > 0 && !e.flags.Has(dioteko.FlagVsyncHint) {
		budget := time.Second / time.Duration(e.targetFPS)
		if el := now.Sub(e.lastEnd); el < budget {
			time.Sleep(budget - el)
			now = time.Now()
		}
	}
	e.frameTime = float32(now.Sub(e.lastEnd).Seconds())
	e.lastEnd = now
	e.fps.tick(now)

	if s != nil && s.started {
		e.poll()
	}
}

func (e *Engine) BeginTextureMode(target dioteko.RawRenderTexture) {
	if rt, ok := e.targets.lookup(target.ID); ok {
		e.canvas = rt.img
	}
}

func (e *Engine) EndTextureMode() {
	e.canvas = e.screen
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// fpsCounter measures completed frames per wall-clock second.
type fpsCounter struct {
	windowStart time.Time
	frames      int
	rate        int
}

func (c *fpsCounter) tick(now time.Time) {
	if c.windowStart.IsZero() {
		c.windowStart = now
	}
	c.frames++
	if el := now.Sub(c.windowStart); el >= time.Second {
		c.rate = int(math.Round(float64(c.frames) / el.Seconds()))
		c.frames = 0
		c.windowStart = now
	}
}
