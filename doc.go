// Package dioteko is a safety layer over a stateful, single-threaded
// real-time graphics and windowing engine.
//
// The engine owns GPU resources and a process-wide window context, and it
// expects a strict call order: create the context, then any number of
// begin-frame / draw / end-frame brackets, then destroy the context. It does
// no reference counting and reports failures only through empty results and
// boolean probes. dioteko enforces that protocol and manages resource
// lifetimes so application code cannot get it wrong silently.
//
// The engine itself is the [Engine] interface. Production programs use the
// Ebitengine backend in package ebitenengine; tests use the recording engine
// in package enginetest.
//
// # Quick start
//
//	func main() {
//		err := ebitenengine.Run(func(e *ebitenengine.Engine) error {
//			win, err := dioteko.NewWindowBuilder(e, 800, 450, "basic window").
//				WithVsyncHint().
//				Build()
//			if err != nil {
//				return err
//			}
//			defer win.Close()
//
//			for !win.ShouldClose() {
//				err := win.Draw(func(p *dioteko.Painter) error {
//					p.ClearBackground(dioteko.RayWhite)
//					p.DrawText("Congrats! You created your first window!", 190, 200, 20, dioteko.LightGray)
//					return nil
//				})
//				if err != nil {
//					return err
//				}
//			}
//			return nil
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Window session
//
// [WindowBuilder] accumulates [ConfigFlags] and produces a [Window]. Only one
// Window may be Ready at a time; a second Build fails with a
// [ProtocolViolation]. The window's flag mask mirrors what was last pushed to
// the engine: [Window.ToggleFullscreen], [Window.Maximize] and
// [Window.Minimize] set their bit, [Window.Restore] clears only the maximized
// and minimized bits. [Window.Close] destroys the context exactly once.
//
// # Frames
//
// [Window.BeginDrawing] returns a [Painter], the only type with drawing
// methods. [Painter.End] issues the end-frame call exactly once; [Window.Draw]
// wraps a frame in a function so the end is never skipped. A second Painter
// while one is live is rejected.
//
// # Resource handles
//
// Textures, render textures and images are held through [Strong] and [Weak]
// handles sharing one strong/weak counter block. The engine's unload call
// fires exactly once, when the last Strong handle is released; Weak handles
// can be upgraded only while a Strong handle exists.
//
//	tex, err := dioteko.LoadTexture(win, "assets/logo.png")
//	if err != nil {
//		return err
//	}
//	defer tex.Release()
//
//	watch := tex.Downgrade()
//	defer watch.Release()
//
// Handles, like the Window and Painter, must stay on the goroutine that
// built the window. Their counters are not atomic.
//
// # Logging
//
// dioteko is silent by default. See [SetLogger].
package dioteko
