package tilemenu

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Page   int     `json:"page,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a sequence of injected gestures against a menu, one
// step at a time, for automated tests and demos. Attach it with
// Menu.SetScript; it advances on every HandleInput call.
//
// Supported actions: "tap" (x, y), "swipe" (fromX, fromY, toX, toY,
// frames), "wait" (frames), "resize" (x, y, width, height: calls Relayout),
// "display" (x, y, page, width, height), "dismiss" and "next".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("tilemenu: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("tilemenu: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "tap", "swipe", "wait", "resize", "display", "dismiss", "next":
		default:
			return nil, fmt.Errorf("tilemenu: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches runner to the menu. Pass nil to detach.
func (m *Menu) SetScript(runner *ScriptRunner) {
	m.script = runner
}

// Done reports whether every step has run and its input was consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from HandleInput.
func (r *ScriptRunner) step(m *Menu) {
	if r.done {
		return
	}
	// Let injected input drain before the next step.
	if len(m.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		m.InjectTap(st.X, st.Y)
	case "swipe":
		m.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "resize":
		m.Relayout(Rect{st.X, st.Y, st.Width, st.Height})
	case "display":
		if _, err := m.DisplayPage(st.Page, Vec2{st.X, st.Y}, Rect{0, 0, st.Width, st.Height}); err != nil {
			debugf("script display: %v", err)
		}
	case "dismiss":
		m.Dismiss()
	case "next":
		m.GoToNextPage()
	}
}
