package dioteko

import "time"

// frameStats holds per-frame counters. start is only set in debug mode.
type frameStats struct {
	start     time.Time
	drawCalls int
}

// debugSlowFrame is the frame duration above which a frame is logged at
// warn level instead of debug.
const debugSlowFrame = 50 * time.Millisecond

// log reports the frame's draw-call count and duration.
func (s frameStats) log(frame uint64) {
	elapsed := time.Since(s.start)
	if elapsed > debugSlowFrame {
		Logger().Warn("dioteko: slow frame",
			"frame", frame, "draw_calls", s.drawCalls, "elapsed", elapsed)
		return
	}
	Logger().Debug("dioteko: frame",
		"frame", frame, "draw_calls", s.drawCalls, "elapsed", elapsed)
}

// DrawCalls returns the number of drawing calls issued in this frame so far.
func (p *Painter) DrawCalls() int {
	return p.stats.drawCalls
}

// Frames returns the number of frames completed in this session.
func (w *Window) Frames() uint64 {
	return w.frames
}
