package enginetest

import (
	"encoding/json"
	"fmt"

	"github.com/e0328eric/dioteko"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	FromX  float32 `json:"fromX,omitempty"`
	FromY  float32 `json:"fromY,omitempty"`
	ToX    float32 `json:"toX,omitempty"`
	ToY    float32 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key    dioteko.Key
	button dioteko.MouseButton
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences synthetic input across frames. It is driven by
// EndDrawing: each frame end either applies one queued event or, when the
// queue is empty, advances the script by one step.
//
//	{"steps": [
//	  {"action": "key", "key": "RIGHT", "frames": 3},
//	  {"action": "wait", "frames": 2},
//	  {"action": "click", "x": 40, "y": 30, "button": "left"},
//	  {"action": "close"}
//	]}
//
// Actions: key, click, drag, move, wait, resize, close.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script. Key and button names are resolved
// up front so a bad script fails here rather than mid-run.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "key":
			k, err := dioteko.ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
			st.key = k
		case "click", "drag":
			st.button = dioteko.MouseButtonLeft
			if st.Button != "" {
				b, err := dioteko.ParseMouseButton(st.Button)
				if err != nil {
					return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
				}
				st.button = b
			}
		case "move", "wait", "resize", "close":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches s to the engine. A nil script detaches.
func (e *Engine) SetScript(s *Script) {
	e.script = s
}

// Done reports whether every step has run and its input has been applied.
func (s *Script) Done() bool {
	return s.done
}

func (s *Script) step(e *Engine) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key":
		e.InjectKeyTap(st.key, st.Frames)
	case "click":
		e.InjectClick(st.X, st.Y, st.button)
	case "drag":
		e.InjectDrag(
			dioteko.Vector2{X: st.FromX, Y: st.FromY},
			dioteko.Vector2{X: st.ToX, Y: st.ToY},
			st.Frames, st.button,
		)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		e.enqueue(inputEvent{kind: eventResize, width: st.Width, height: st.Height})
	case "close":
		e.enqueue(inputEvent{kind: eventClose})
	}
}
