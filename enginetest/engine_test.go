package enginetest

import (
	"slices"
	"testing"

	"github.com/e0328eric/dioteko"
)

func newLive(t *testing.T) *Engine {
	t.Helper()
	e := New()
	e.InitWindow(320, 240, "test")
	if !e.IsWindowReady() {
		t.Fatal("window should be ready after InitWindow")
	}
	return e
}

func frame(e *Engine) {
	e.BeginDrawing()
	e.EndDrawing()
}

func TestRecordsCalls(t *testing.T) {
	e := newLive(t)
	frame(e)
	e.CloseWindow()

	want := []string{"InitWindow", "IsWindowReady", "BeginDrawing", "EndDrawing", "CloseWindow"}
	if got := e.Calls(); !slices.Equal(got, want) {
		t.Errorf("Calls() = %v, want %v", got, want)
	}
	if e.Count("EndDrawing") != 1 {
		t.Errorf("EndDrawing count = %d, want 1", e.Count("EndDrawing"))
	}
	if v := e.Violations(); len(v) != 0 {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestFailWindowInit(t *testing.T) {
	e := New()
	e.FailWindowInit = true
	e.InitWindow(10, 10, "x")
	if e.IsWindowReady() {
		t.Error("IsWindowReady should be false")
	}
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func(e *Engine)
	}{
		{"nested BeginDrawing", func(e *Engine) {
			e.BeginDrawing()
			e.BeginDrawing()
		}},
		{"EndDrawing without begin", func(e *Engine) { e.EndDrawing() }},
		{"draw outside frame", func(e *Engine) { e.ClearBackground(dioteko.Black) }},
		{"double unload", func(e *Engine) {
			tex := e.LoadTexture("a.png")
			e.UnloadTexture(tex)
			e.UnloadTexture(tex)
		}},
		{"second InitWindow", func(e *Engine) { e.InitWindow(1, 1, "again") }},
		{"close inside frame", func(e *Engine) {
			e.BeginDrawing()
			e.CloseWindow()
		}},
		{"EndDrawing in texture mode", func(e *Engine) {
			rt := e.LoadRenderTexture(8, 8)
			e.BeginDrawing()
			e.BeginTextureMode(rt)
			e.EndDrawing()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLive(t)
			tt.run(e)
			if len(e.Violations()) == 0 {
				t.Error("expected a violation")
			}
		})
	}
}

func TestLoadOutcomes(t *testing.T) {
	e := newLive(t)
	e.SetImageSize("big.png", 512, 256)

	tex := e.LoadTexture("big.png")
	if !tex.Valid() || tex.Width != 512 || tex.Height != 256 {
		t.Errorf("LoadTexture = %+v", tex)
	}

	e.FailLoad("missing.png")
	if got := e.LoadTexture("missing.png"); got.ID != 0 {
		t.Errorf("failed load should be zero, got %+v", got)
	}

	e.FailLoadPartial("broken.png")
	partial := e.LoadTexture("broken.png")
	if partial.ID == 0 || partial.Valid() {
		t.Errorf("partial load = %+v, want ID without size", partial)
	}
	if e.LiveTextures() != 2 {
		t.Errorf("LiveTextures = %d, want 2", e.LiveTextures())
	}

	if rt := e.LoadRenderTexture(0, 10); rt.ID != 0 {
		t.Errorf("zero-size render texture should fail, got %+v", rt)
	}
	rt := e.LoadRenderTexture(16, 8)
	if !rt.Valid() {
		t.Errorf("render texture = %+v", rt)
	}

	img := e.LoadImageFromTexture(tex)
	if img.Width != 512 {
		t.Errorf("image from texture width = %d", img.Width)
	}
	cp := e.ImageCopy(img)
	if cp.ID == img.ID || cp.Height != 256 {
		t.Errorf("ImageCopy = %+v", cp)
	}

	e.UnloadImage(img)
	e.UnloadImage(cp)
	e.UnloadTexture(tex)
	e.UnloadTexture(partial)
	e.UnloadRenderTexture(rt)
	if e.LiveTextures()+e.LiveImages()+e.LiveRenderTextures() != 0 {
		t.Error("resources still live after unload")
	}
	if e.UnloadCount(tex.ID) != 1 {
		t.Errorf("UnloadCount = %d", e.UnloadCount(tex.ID))
	}
	if v := e.Violations(); len(v) != 0 {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestExportImage(t *testing.T) {
	e := newLive(t)
	img := e.LoadImage("a.png")
	if !e.ExportImage(img, "out.png") {
		t.Fatal("ExportImage should succeed")
	}
	if got, ok := e.Exported("out.png"); !ok || got.ID != img.ID {
		t.Errorf("Exported = %+v, %v", got, ok)
	}
	e.FailExport = true
	if e.ExportImage(img, "other.png") {
		t.Error("ExportImage should fail with FailExport")
	}
}

func TestKeyEdgesLastOneFrame(t *testing.T) {
	e := newLive(t)
	e.PressKey(dioteko.KeyA)
	if !e.IsKeyPressed(dioteko.KeyA) || !e.IsKeyDown(dioteko.KeyA) {
		t.Fatal("A should be pressed and down")
	}
	if got := e.GetKeyPressed(); got != dioteko.KeyA {
		t.Errorf("GetKeyPressed = %v, want A", got)
	}
	if got := e.GetKeyPressed(); got != dioteko.KeyNull {
		t.Errorf("second GetKeyPressed = %v, want NULL", got)
	}

	frame(e)
	if e.IsKeyPressed(dioteko.KeyA) {
		t.Error("pressed edge should expire at frame end")
	}
	if !e.IsKeyDown(dioteko.KeyA) {
		t.Error("A should still be held")
	}

	e.ReleaseKey(dioteko.KeyA)
	if !e.IsKeyReleased(dioteko.KeyA) || !e.IsKeyUp(dioteko.KeyA) {
		t.Error("A should be released and up")
	}
}

func TestExitKeyClosesWindow(t *testing.T) {
	e := newLive(t)
	if e.WindowShouldClose() {
		t.Fatal("should not close yet")
	}
	e.PressKey(dioteko.KeyEscape)
	if !e.WindowShouldClose() {
		t.Error("exit key should request close")
	}

	e.SetExitKey(dioteko.KeyNull)
	if e.WindowShouldClose() {
		t.Error("KeyNull disables the exit key")
	}
}

func TestMouseDelta(t *testing.T) {
	e := newLive(t)
	e.MoveMouse(10, 10)
	frame(e)
	e.MoveMouse(15, 7)
	if got := e.GetMouseDelta(); got != (dioteko.Vector2{X: 5, Y: -3}) {
		t.Errorf("delta = %+v", got)
	}
	e.SetMousePosition(0, 0)
	if got := e.GetMouseDelta(); got != (dioteko.Vector2{}) {
		t.Errorf("delta after warp = %+v", got)
	}
}

func TestInjectClick(t *testing.T) {
	e := newLive(t)
	e.InjectClick(50, 60, dioteko.MouseButtonLeft)
	if e.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", e.Pending())
	}

	frame(e)
	if !e.IsMouseButtonPressed(dioteko.MouseButtonLeft) {
		t.Error("press should be visible in the frame after it is applied")
	}
	if got := e.GetMousePosition(); got != (dioteko.Vector2{X: 50, Y: 60}) {
		t.Errorf("mouse = %+v", got)
	}

	frame(e)
	if !e.IsMouseButtonReleased(dioteko.MouseButtonLeft) {
		t.Error("release should follow one frame later")
	}
	if e.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", e.Pending())
	}
}

func TestInjectDrag(t *testing.T) {
	e := newLive(t)
	e.InjectDrag(dioteko.Vector2{}, dioteko.Vector2{X: 30, Y: 30}, 4, dioteko.MouseButtonLeft)
	if e.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", e.Pending())
	}
	frame(e) // press
	frame(e) // first move
	if got := e.GetMousePosition(); got != (dioteko.Vector2{X: 10, Y: 10}) {
		t.Errorf("after first move = %+v", got)
	}
	if !e.IsMouseButtonDown(dioteko.MouseButtonLeft) {
		t.Error("button should be held during drag")
	}
}

func TestInjectKeyTap(t *testing.T) {
	e := newLive(t)
	e.InjectKeyTap(dioteko.KeyRight, 3)
	held := 0
	for range 6 {
		frame(e)
		if e.IsKeyDown(dioteko.KeyRight) {
			held++
		}
	}
	if held != 3 {
		t.Errorf("key held for %d frames, want 3", held)
	}
}

func TestResize(t *testing.T) {
	e := newLive(t)
	e.Resize(640, 480)
	if !e.IsWindowResized() || e.GetScreenWidth() != 640 {
		t.Error("resize not reported")
	}
	frame(e)
	if e.IsWindowResized() {
		t.Error("resized flag should last one frame")
	}
}

func TestCloseAfter(t *testing.T) {
	e := newLive(t)
	e.CloseAfter(2)
	frame(e)
	if e.WindowShouldClose() {
		t.Error("closed too early")
	}
	frame(e)
	if !e.WindowShouldClose() {
		t.Error("should close after two frames")
	}
}
