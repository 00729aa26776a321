package dioteko

// Input polling is a stateless pass-through to the engine. It needs a Ready
// session because the engine only samples input while its context exists.

// --- Keyboard ---

// IsKeyPressed reports whether key went down this frame.
func (w *Window) IsKeyPressed(key Key) bool {
	return w.mustReady("Window.IsKeyPressed").IsKeyPressed(key)
}

// IsKeyDown reports whether key is being held.
func (w *Window) IsKeyDown(key Key) bool {
	return w.mustReady("Window.IsKeyDown").IsKeyDown(key)
}

// IsKeyReleased reports whether key went up this frame.
func (w *Window) IsKeyReleased(key Key) bool {
	return w.mustReady("Window.IsKeyReleased").IsKeyReleased(key)
}

// IsKeyUp reports whether key is not being held.
func (w *Window) IsKeyUp(key Key) bool {
	return w.mustReady("Window.IsKeyUp").IsKeyUp(key)
}

// KeyPressed returns the next key from the pressed-key queue, or KeyNull
// when the queue is empty.
func (w *Window) KeyPressed() Key {
	return w.mustReady("Window.KeyPressed").GetKeyPressed()
}

// CharPressed returns the next typed character, or false when none is queued.
func (w *Window) CharPressed() (rune, bool) {
	r := w.mustReady("Window.CharPressed").GetCharPressed()
	return r, r != 0
}

// --- Mouse ---

func (w *Window) IsMouseButtonPressed(button MouseButton) bool {
	return w.mustReady("Window.IsMouseButtonPressed").IsMouseButtonPressed(button)
}

func (w *Window) IsMouseButtonDown(button MouseButton) bool {
	return w.mustReady("Window.IsMouseButtonDown").IsMouseButtonDown(button)
}

func (w *Window) IsMouseButtonReleased(button MouseButton) bool {
	return w.mustReady("Window.IsMouseButtonReleased").IsMouseButtonReleased(button)
}

func (w *Window) IsMouseButtonUp(button MouseButton) bool {
	return w.mustReady("Window.IsMouseButtonUp").IsMouseButtonUp(button)
}

// MousePosition returns the cursor position in window coordinates.
func (w *Window) MousePosition() Vector2 {
	return w.mustReady("Window.MousePosition").GetMousePosition()
}

// MouseDelta returns the cursor movement since the previous frame.
func (w *Window) MouseDelta() Vector2 {
	return w.mustReady("Window.MouseDelta").GetMouseDelta()
}

// MouseWheelMove returns the vertical wheel movement of this frame.
func (w *Window) MouseWheelMove() float32 {
	return w.mustReady("Window.MouseWheelMove").GetMouseWheelMove()
}

// SetMousePosition moves the cursor. Backends that cannot warp the cursor
// ignore it.
func (w *Window) SetMousePosition(x, y int) {
	w.mustReady("Window.SetMousePosition").SetMousePosition(x, y)
}
