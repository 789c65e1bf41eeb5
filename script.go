package swirl

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	ID      int     `json:"id,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	DeltaY  float64 `json:"deltaY,omitempty"`
	Kind    string  `json:"kind,omitempty"` // mouse (default), touch, pen
	Buttons int     `json:"buttons,omitempty"`
	Ticks   int     `json:"ticks,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a recorded sequence of input events into an Engine.
// Useful for demos, regression capture, and automated gesture testing
// without a live input device.
//
// Supported actions: "down", "move", "up", "cancel", "wheel", "click",
// "doubleclick", and "tick" (runs Ticks decay steps, default 1).
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if _, err := pointerKindOf(st.Kind); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		switch st.Action {
		case "down", "move", "up", "cancel", "wheel", "click", "doubleclick", "tick":
		default:
			return nil, fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Run replays every step into the engine, in order.
func (s *Script) Run(e *Engine) {
	for _, st := range s.steps {
		switch st.Action {
		case "down":
			kind, _ := pointerKindOf(st.Kind)
			e.PointerDown(st.ID, st.X, st.Y, kind)
		case "move":
			e.PointerMove(st.ID, st.X, st.Y, Buttons(st.Buttons))
		case "up":
			e.PointerUp(st.ID)
		case "cancel":
			e.PointerCancel(st.ID)
		case "wheel":
			e.Wheel(st.X, st.Y, st.DeltaY)
		case "click":
			e.Click(st.X, st.Y)
		case "doubleclick":
			e.DoubleClick()
		case "tick":
			n := st.Ticks
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				e.Tick()
			}
		}
	}
}

// pointerKindOf maps a script kind string to a PointerKind. Empty means
// mouse.
func pointerKindOf(kind string) (PointerKind, error) {
	switch kind {
	case "", "mouse":
		return PointerMouse, nil
	case "touch":
		return PointerTouch, nil
	case "pen":
		return PointerPen, nil
	default:
		return PointerMouse, fmt.Errorf("unknown pointer kind %q", kind)
	}
}
