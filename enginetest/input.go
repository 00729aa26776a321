package enginetest

import "github.com/e0328eric/dioteko"

// inputState is the per-frame keyboard and mouse state. Pressed and released
// edges, the key and char queues, the wheel and the mouse delta live for one
// frame and are cleared by EndDrawing.
type inputState struct {
	keyDown     map[dioteko.Key]bool
	keyPressed  map[dioteko.Key]bool
	keyReleased map[dioteko.Key]bool
	keyQueue    []dioteko.Key
	chars       []rune

	mouseDown     map[dioteko.MouseButton]bool
	mousePressed  map[dioteko.MouseButton]bool
	mouseReleased map[dioteko.MouseButton]bool
	mouse         dioteko.Vector2
	prevMouse     dioteko.Vector2
	wheel         float32
}

func newInputState() inputState {
	return inputState{
		keyDown:       make(map[dioteko.Key]bool),
		keyPressed:    make(map[dioteko.Key]bool),
		keyReleased:   make(map[dioteko.Key]bool),
		mouseDown:     make(map[dioteko.MouseButton]bool),
		mousePressed:  make(map[dioteko.MouseButton]bool),
		mouseReleased: make(map[dioteko.MouseButton]bool),
	}
}

func (s *inputState) clearEdges() {
	clear(s.keyPressed)
	clear(s.keyReleased)
	clear(s.mousePressed)
	clear(s.mouseReleased)
	s.keyQueue = s.keyQueue[:0]
	s.chars = s.chars[:0]
	s.wheel = 0
	s.prevMouse = s.mouse
}

type eventKind uint8

const (
	eventIdle eventKind = iota
	eventKeyDown
	eventKeyUp
	eventMouseDown
	eventMouseUp
	eventMove
	eventResize
	eventClose
)

// inputEvent is one queued synthetic event. A queued event is applied at the
// end of a frame, so it is visible to the whole next frame.
type inputEvent struct {
	kind   eventKind
	key    dioteko.Key
	button dioteko.MouseButton
	pos    dioteko.Vector2
	width  int
	height int
}

func (e *Engine) apply(ev inputEvent) {
	in := &e.input
	switch ev.kind {
	case eventKeyDown:
		if !in.keyDown[ev.key] {
			in.keyPressed[ev.key] = true
			in.keyQueue = append(in.keyQueue, ev.key)
		}
		in.keyDown[ev.key] = true
	case eventKeyUp:
		if in.keyDown[ev.key] {
			in.keyReleased[ev.key] = true
		}
		delete(in.keyDown, ev.key)
	case eventMouseDown:
		in.mouse = ev.pos
		if !in.mouseDown[ev.button] {
			in.mousePressed[ev.button] = true
		}
		in.mouseDown[ev.button] = true
	case eventMouseUp:
		in.mouse = ev.pos
		if in.mouseDown[ev.button] {
			in.mouseReleased[ev.button] = true
		}
		delete(in.mouseDown, ev.button)
	case eventMove:
		in.mouse = ev.pos
	case eventResize:
		e.width, e.height = ev.width, ev.height
		e.resized = true
	case eventClose:
		e.shouldClose = true
	}
}

// endFrame runs after every EndDrawing: it expires the frame's edges, lets
// the script queue more input and applies at most one queued event.
func (e *Engine) endFrame() {
	e.input.clearEdges()
	e.resized = false
	if len(e.queue) == 0 && e.script != nil {
		e.script.step(e)
	}
	if len(e.queue) == 0 {
		return
	}
	ev := e.queue[0]
	copy(e.queue, e.queue[1:])
	e.queue = e.queue[:len(e.queue)-1]
	e.apply(ev)
}

// Pending returns the number of queued events not yet applied.
func (e *Engine) Pending() int { return len(e.queue) }

// --- Immediate input ---

// PressKey holds key down. It reads as pressed until the current frame ends.
func (e *Engine) PressKey(key dioteko.Key) {
	e.apply(inputEvent{kind: eventKeyDown, key: key})
}

// ReleaseKey lets go of key.
func (e *Engine) ReleaseKey(key dioteko.Key) {
	e.apply(inputEvent{kind: eventKeyUp, key: key})
}

// TypeChar queues a unicode character for GetCharPressed.
func (e *Engine) TypeChar(r rune) {
	e.input.chars = append(e.input.chars, r)
}

// MoveMouse moves the cursor to (x, y).
func (e *Engine) MoveMouse(x, y float32) {
	e.apply(inputEvent{kind: eventMove, pos: dioteko.Vector2{X: x, Y: y}})
}

// PressMouse holds button down at the current cursor position.
func (e *Engine) PressMouse(button dioteko.MouseButton) {
	e.apply(inputEvent{kind: eventMouseDown, button: button, pos: e.input.mouse})
}

// ReleaseMouse lets go of button.
func (e *Engine) ReleaseMouse(button dioteko.MouseButton) {
	e.apply(inputEvent{kind: eventMouseUp, button: button, pos: e.input.mouse})
}

// ScrollWheel adds to this frame's wheel movement.
func (e *Engine) ScrollWheel(delta float32) {
	e.input.wheel += delta
}

// Resize changes the reported screen size and flags the window as resized
// for the current frame.
func (e *Engine) Resize(width, height int) {
	e.apply(inputEvent{kind: eventResize, width: width, height: height})
}

// RequestClose makes WindowShouldClose report true, as if the user clicked
// the close button.
func (e *Engine) RequestClose() {
	e.apply(inputEvent{kind: eventClose})
}

// --- Queued input ---

func (e *Engine) enqueue(ev ...inputEvent) {
	e.queue = append(e.queue, ev...)
}

// InjectKeyTap queues a key press held for frames frames followed by its
// release. frames below 1 is treated as 1.
func (e *Engine) InjectKeyTap(key dioteko.Key, frames int) {
	if frames < 1 {
		frames = 1
	}
	e.enqueue(inputEvent{kind: eventKeyDown, key: key})
	for range frames - 1 {
		e.enqueue(inputEvent{kind: eventIdle})
	}
	e.enqueue(inputEvent{kind: eventKeyUp, key: key})
}

// InjectMove queues a cursor move to (x, y).
func (e *Engine) InjectMove(x, y float32) {
	e.enqueue(inputEvent{kind: eventMove, pos: dioteko.Vector2{X: x, Y: y}})
}

// InjectClick queues a press and a release of button at (x, y). Consumes
// two frames.
func (e *Engine) InjectClick(x, y float32, button dioteko.MouseButton) {
	pos := dioteko.Vector2{X: x, Y: y}
	e.enqueue(
		inputEvent{kind: eventMouseDown, button: button, pos: pos},
		inputEvent{kind: eventMouseUp, button: button, pos: pos},
	)
}

// InjectDrag queues a press at from, linearly interpolated moves and a
// release at to. The sequence consumes frames frames, at least two.
func (e *Engine) InjectDrag(from, to dioteko.Vector2, frames int, button dioteko.MouseButton) {
	if frames < 2 {
		frames = 2
	}
	e.enqueue(inputEvent{kind: eventMouseDown, button: button, pos: from})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		e.enqueue(inputEvent{kind: eventMove, pos: from.Lerp(to, t)})
	}
	e.enqueue(inputEvent{kind: eventMouseUp, button: button, pos: to})
}

// --- dioteko.InputEngine ---

func (e *Engine) IsKeyPressed(key dioteko.Key) bool {
	e.record("IsKeyPressed")
	return e.input.keyPressed[key]
}

func (e *Engine) IsKeyDown(key dioteko.Key) bool {
	e.record("IsKeyDown")
	return e.input.keyDown[key]
}

func (e *Engine) IsKeyReleased(key dioteko.Key) bool {
	e.record("IsKeyReleased")
	return e.input.keyReleased[key]
}

func (e *Engine) IsKeyUp(key dioteko.Key) bool {
	e.record("IsKeyUp")
	return !e.input.keyDown[key]
}

func (e *Engine) GetKeyPressed() dioteko.Key {
	e.record("GetKeyPressed")
	if len(e.input.keyQueue) == 0 {
		return dioteko.KeyNull
	}
	k := e.input.keyQueue[0]
	e.input.keyQueue = e.input.keyQueue[1:]
	return k
}

func (e *Engine) GetCharPressed() rune {
	e.record("GetCharPressed")
	if len(e.input.chars) == 0 {
		return 0
	}
	r := e.input.chars[0]
	e.input.chars = e.input.chars[1:]
	return r
}

func (e *Engine) IsMouseButtonPressed(button dioteko.MouseButton) bool {
	e.record("IsMouseButtonPressed")
	return e.input.mousePressed[button]
}

func (e *Engine) IsMouseButtonDown(button dioteko.MouseButton) bool {
	e.record("IsMouseButtonDown")
	return e.input.mouseDown[button]
}

func (e *Engine) IsMouseButtonReleased(button dioteko.MouseButton) bool {
	e.record("IsMouseButtonReleased")
	return e.input.mouseReleased[button]
}

func (e *Engine) IsMouseButtonUp(button dioteko.MouseButton) bool {
	e.record("IsMouseButtonUp")
	return !e.input.mouseDown[button]
}

func (e *Engine) GetMousePosition() dioteko.Vector2 {
	e.record("GetMousePosition")
	return e.input.mouse
}

func (e *Engine) GetMouseDelta() dioteko.Vector2 {
	e.record("GetMouseDelta")
	return e.input.mouse.Sub(e.input.prevMouse)
}

func (e *Engine) GetMouseWheelMove() float32 {
	e.record("GetMouseWheelMove")
	return e.input.wheel
}

func (e *Engine) SetMousePosition(x, y int) {
	e.record("SetMousePosition")
	pos := dioteko.Vector2{X: float32(x), Y: float32(y)}
	e.input.mouse = pos
	e.input.prevMouse = pos
}
