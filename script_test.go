package inputmix

import (
	"strings"
	"testing"
)

func TestLoadInputScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"invalid json", `{`, "parse input script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestScriptRunnerReplay(t *testing.T) {
	script := `{"steps": [
		{"action": "connect", "pad": 0},
		{"action": "keydown", "key": "Space"},
		{"action": "press", "pad": 0, "button": 2},
		{"action": "axis", "pad": 0, "axis": 1, "value": -0.8},
		{"action": "wait", "frames": 2},
		{"action": "keyup", "key": "Space"},
		{"action": "release", "pad": 0, "button": 2},
		{"action": "tap", "key": "Enter"},
		{"action": "wait"},
		{"action": "disconnect", "pad": 0}
	]}`
	runner, err := LoadInputScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}

	m, inj := newTestMixer()
	inj.SetScript(runner)
	space, _ := m.FindButton("Space")
	enter, _ := m.FindButton("Enter")
	pad, _ := m.FindButton("Gamepad0.Button2")
	stick := m.Find("Gamepad0.Axis1")

	m.Tick() // 1: connect, press, axis
	if !space.IsDown() || !pad.IsDown() || stick.Value() != -0.8 {
		t.Fatalf("tick 1: space=%v pad=%v stick=%v", space.IsDown(), pad.IsDown(), stick.Value())
	}

	m.Tick() // 2: waiting
	if !space.IsDown() || space.WasPressed() {
		t.Error("tick 2: space should be held without a new edge")
	}

	m.Tick() // 3: releases and tap
	if space.IsDown() || !space.WasReleased() || pad.IsDown() {
		t.Errorf("tick 3: space=%v pad=%v", space.IsDown(), pad.IsDown())
	}
	if !enter.WasPressed() || !enter.WasReleased() {
		t.Error("tick 3: tap should report both edges")
	}
	if runner.Done() {
		t.Error("tick 3: runner should still be waiting")
	}

	m.Tick() // 4: disconnect
	if !runner.Done() {
		t.Error("tick 4: runner should be done")
	}
	if m.Gamepad().Connected(0) || stick.Value() != 0 {
		t.Error("tick 4: gamepad should be unplugged and at rest")
	}
}
