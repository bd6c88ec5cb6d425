package inputmix

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Pad    int     `json:"pad,omitempty"`
	Button int     `json:"button,omitempty"`
	Axis   int     `json:"axis,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"keydown": true, "keyup": true, "tap": true,
	"connect": true, "disconnect": true,
	"press": true, "release": true, "axis": true,
	"wait": true,
}

// ScriptRunner replays a scripted input sequence through an Injector, one
// frame per Poll. Consecutive steps run in the same frame until a "wait"
// step; the steps after a wait of N frames run N frames later.
//
//	{"steps": [
//		{"action": "connect", "pad": 0},
//		{"action": "keydown", "key": "Space"},
//		{"action": "axis", "pad": 0, "axis": 1, "value": -0.8},
//		{"action": "wait", "frames": 3},
//		{"action": "keyup", "key": "Space"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script and returns a ScriptRunner ready
// to be attached with Injector.SetScript.
func LoadInputScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(inj *Injector) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount > 0 {
			return
		}
	}

	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "keydown":
			inj.KeyDown(st.Key)
		case "keyup":
			inj.KeyUp(st.Key)
		case "tap":
			inj.Tap(st.Key)
		case "connect":
			inj.Connect(st.Pad)
		case "disconnect":
			inj.Disconnect(st.Pad)
		case "press":
			inj.PressButton(st.Pad, st.Button)
		case "release":
			inj.ReleaseButton(st.Pad, st.Button)
		case "axis":
			inj.SetAxis(st.Pad, st.Axis, st.Value)
		case "wait":
			r.waitCount = max(st.Frames, 1)
			return
		}
	}
	r.done = true
}
