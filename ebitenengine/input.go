package ebitenengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/e0328eric/dioteko"
)

const mouseButtonCount = int(ebiten.MouseButtonMax) + 1

// inputAccum collects input on Ebitengine's goroutine between two frame
// ends. Edges accumulate across ticks; held state is overwritten.
type inputAccum struct {
	pressed       []ebiten.Key
	released      []ebiten.Key
	down          []ebiten.Key
	chars         []rune
	mousePressed  [mouseButtonCount]bool
	mouseReleased [mouseButtonCount]bool
	mouseDown     [mouseButtonCount]bool
	wheel         float64
	cursor        image.Point
}

func (a *inputAccum) collect() {
	a.pressed = inpututil.AppendJustPressedKeys(a.pressed)
	a.released = inpututil.AppendJustReleasedKeys(a.released)
	a.down = inpututil.AppendPressedKeys(a.down[:0])
	a.chars = ebiten.AppendInputChars(a.chars)
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			a.mousePressed[b] = true
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			a.mouseReleased[b] = true
		}
		a.mouseDown[b] = ebiten.IsMouseButtonPressed(b)
	}
	_, wy := ebiten.Wheel()
	a.wheel += wy
	x, y := ebiten.CursorPosition()
	a.cursor = image.Pt(x, y)
}

func (a *inputAccum) clearEdges() {
	a.pressed = a.pressed[:0]
	a.released = a.released[:0]
	a.chars = a.chars[:0]
	a.mousePressed = [mouseButtonCount]bool{}
	a.mouseReleased = [mouseButtonCount]bool{}
	a.wheel = 0
}

// frameInput is the input snapshot the application sees for one frame.
type frameInput struct {
	pressed       map[ebiten.Key]bool
	released      map[ebiten.Key]bool
	down          map[ebiten.Key]bool
	queue         []dioteko.Key
	chars         []rune
	mousePressed  [mouseButtonCount]bool
	mouseReleased [mouseButtonCount]bool
	mouseDown     [mouseButtonCount]bool
	wheel         float32
	cursor        dioteko.Vector2
	prevCursor    dioteko.Vector2
	primed        bool
}

func newFrameInput() frameInput {
	return frameInput{
		pressed:  make(map[ebiten.Key]bool),
		released: make(map[ebiten.Key]bool),
		down:     make(map[ebiten.Key]bool),
	}
}

// poll moves the accumulated input into the frame snapshot.
func (e *Engine) poll() {
	s := e.sess
	in := &e.input

	s.mu.Lock()
	a := &s.accum
	clear(in.pressed)
	clear(in.released)
	clear(in.down)
	in.queue = in.queue[:0]
	for _, k := range a.pressed {
		in.pressed[k] = true
		if dk, ok := fromEbitenKey[k]; ok {
			in.queue = append(in.queue, dk)
		}
	}
	for _, k := range a.released {
		in.released[k] = true
	}
	for _, k := range a.down {
		in.down[k] = true
	}
	in.chars = append(in.chars[:0], a.chars...)
	in.mousePressed = a.mousePressed
	in.mouseReleased = a.mouseReleased
	in.mouseDown = a.mouseDown
	in.wheel = float32(a.wheel)
	cursor := dioteko.Vector2{X: float32(a.cursor.X), Y: float32(a.cursor.Y)}
	e.resized = s.resized
	s.resized = false
	a.clearEdges()
	s.mu.Unlock()

	in.prevCursor = in.cursor
	if !in.primed {
		in.prevCursor = cursor
		in.primed = true
	}
	in.cursor = cursor
}

func (e *Engine) IsKeyPressed(key dioteko.Key) bool {
	eb, ok := toEbitenKey[key]
	return ok && e.input.pressed[eb]
}

func (e *Engine) IsKeyDown(key dioteko.Key) bool {
	eb, ok := toEbitenKey[key]
	return ok && e.input.down[eb]
}

func (e *Engine) IsKeyReleased(key dioteko.Key) bool {
	eb, ok := toEbitenKey[key]
	return ok && e.input.released[eb]
}

func (e *Engine) IsKeyUp(key dioteko.Key) bool {
	return !e.IsKeyDown(key)
}

func (e *Engine) GetKeyPressed() dioteko.Key {
	if len(e.input.queue) == 0 {
		return dioteko.KeyNull
	}
	k := e.input.queue[0]
	e.input.queue = e.input.queue[1:]
	return k
}

func (e *Engine) GetCharPressed() rune {
	if len(e.input.chars) == 0 {
		return 0
	}
	r := e.input.chars[0]
	e.input.chars = e.input.chars[1:]
	return r
}

func (e *Engine) IsMouseButtonPressed(button dioteko.MouseButton) bool {
	b, ok := mouseButtons[button]
	return ok && e.input.mousePressed[b]
}

func (e *Engine) IsMouseButtonDown(button dioteko.MouseButton) bool {
	b, ok := mouseButtons[button]
	return ok && e.input.mouseDown[b]
}

func (e *Engine) IsMouseButtonReleased(button dioteko.MouseButton) bool {
	b, ok := mouseButtons[button]
	return ok && e.input.mouseReleased[b]
}

func (e *Engine) IsMouseButtonUp(button dioteko.MouseButton) bool {
	return !e.IsMouseButtonDown(button)
}

func (e *Engine) GetMousePosition() dioteko.Vector2 {
	return e.input.cursor
}

func (e *Engine) GetMouseDelta() dioteko.Vector2 {
	return e.input.cursor.Sub(e.input.prevCursor)
}

func (e *Engine) GetMouseWheelMove() float32 {
	return e.input.wheel
}

// SetMousePosition moves the reported cursor until the next frame ends.
// Ebitengine cannot warp the system cursor.
func (e *Engine) SetMousePosition(x, y int) {
	pos := dioteko.Vector2{X: float32(x), Y: float32(y)}
	e.input.cursor = pos
	e.input.prevCursor = pos
}
