package inputmix

import (
	"errors"
	"strings"
	"testing"
)

// tickTo advances m until its clock reads tick.
func tickTo(m *Mixer, tick Tick) {
	for m.Now() < tick {
		m.Tick()
	}
}

// --- VirtualAxis ---

func TestVirtualAxisValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      []float64
		deadzone float64
		want     float64
	}{
		{"sum clamps high", []float64{0.6, 0.6}, 0.1, 1},
		{"sum clamps low", []float64{-0.6, -0.9}, 0.1, -1},
		{"single under deadzone", []float64{0.05}, 0.1, 0},
		{"negative under deadzone", []float64{-0.05}, 0.1, 0},
		{"at deadzone counts", []float64{0.1}, 0.1, 0.1},
		{"opposites cancel", []float64{0.5, -0.5}, 0.1, 0},
		{"one filtered one kept", []float64{0.05, 0.3}, 0.1, 0.3},
		{"zero deadzone", []float64{0.05}, 0, 0.05},
		{"no bindings", nil, 0.1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMixer()
			v := m.CreateAxis("move").WithDeadzone(tt.deadzone)
			for i, raw := range tt.raw {
				a := m.Gamepad().Axis(0, i)
				a.Set(raw)
				if err := v.Bind(a); err != nil {
					t.Fatalf("Bind: %v", err)
				}
			}
			if got := v.Value(); got != tt.want {
				t.Errorf("Value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVirtualAxisDefaultDeadzone(t *testing.T) {
	m := NewMixer()
	if got := m.CreateAxis("x").Deadzone(); got != 0.1 {
		t.Errorf("Deadzone = %v, want 0.1", got)
	}
}

func TestVirtualAxisButtonsAsAxes(t *testing.T) {
	m, inj := newTestMixer()
	x := m.CreateAxis("x")
	if err := x.Bind("-ArrowLeft", "ArrowRight", "Gamepad0.Axis0"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	inj.KeyDown("ArrowLeft")
	m.Tick()
	if got := x.Value(); got != -1 {
		t.Errorf("left held: Value = %v, want -1", got)
	}

	inj.KeyDown("ArrowRight")
	m.Tick()
	if got := x.Value(); got != 0 {
		t.Errorf("both held: Value = %v, want 0", got)
	}

	inj.KeyUp("ArrowLeft")
	m.Tick()
	if got := x.Value(); got != 1 {
		t.Errorf("right held: Value = %v, want 1", got)
	}
}

func TestVirtualAxisBindDeduplicatesByNodeID(t *testing.T) {
	m := NewMixer()
	v := m.CreateAxis("look")
	if err := v.BindPad(2, "Gamepad.Axis3", "Gamepad2.Axis3"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	got := v.Bindings()
	if len(got) != 1 || got[0].ID() != "Gamepad2.Axis3" {
		t.Errorf("Bindings = %v, want one Gamepad2.Axis3", ids(got))
	}
}

func TestVirtualAxisRebindReplaces(t *testing.T) {
	m := NewMixer()
	v := m.CreateAxis("x")
	first := NewConcreteAxis("stick")
	second := NewConcreteAxis("stick")
	second.Set(0.5)

	_ = v.Bind(first, NewConcreteAxis("other"))
	_ = v.Bind(second)

	b := v.Bindings()
	if len(b) != 2 || b[0] != Axis(second) {
		t.Fatalf("rebinding should replace in place, got %v", ids(b))
	}
	if v.Value() != 0.5 {
		t.Errorf("Value = %v, want 0.5", v.Value())
	}
}

func TestVirtualAxisClear(t *testing.T) {
	m := NewMixer()
	v := m.CreateAxis("x")
	a := NewConcreteAxis("a")
	a.Set(1)
	_ = v.Bind(a)

	if v.Clear() != v {
		t.Error("Clear should return the receiver")
	}
	if len(v.Bindings()) != 0 || v.Value() != 0 {
		t.Errorf("after Clear: %d bindings, Value %v", len(v.Bindings()), v.Value())
	}

	_ = v.Bind(a)
	if v.Value() != 1 {
		t.Errorf("rebinding after Clear: Value = %v, want 1", v.Value())
	}
}

func TestVirtualAxisBindRejected(t *testing.T) {
	m := NewMixer()
	v := m.CreateAxis("x")
	_ = v.Bind("KeyA")

	err := v.Bind("KeyD", "", "KeyW")
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("err = %v, want ErrUnresolved", err)
	}
	if len(v.Bindings()) != 1 {
		t.Errorf("rejected bind changed bindings: %v", ids(v.Bindings()))
	}

	err = v.Bind(42)
	if !errors.Is(err, ErrUnsupportedTarget) {
		t.Errorf("err = %v, want ErrUnsupportedTarget", err)
	}
}

// --- VirtualButton ---

func TestVirtualButtonAggregates(t *testing.T) {
	m := NewMixer()
	a := m.Keyboard().Find("KeyA")
	b := m.Keyboard().Find("KeyB")

	tickTo(m, 2)
	b.Toggle(true, m.Now())
	tickTo(m, 3)
	b.Toggle(false, m.Now())
	tickTo(m, 5)
	a.Toggle(true, m.Now())

	v := m.CreateButton("fire")
	if err := v.Bind(a, b); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if !v.IsDown() || v.Value() != 1 {
		t.Errorf("IsDown=%v Value=%v, want true 1", v.IsDown(), v.Value())
	}
	if v.PressedTick() != 5 {
		t.Errorf("PressedTick = %d, want 5", v.PressedTick())
	}
	if !v.WasPressed() {
		t.Error("tick 5: WasPressed should be true")
	}
	m.Tick()
	if v.WasPressed() {
		t.Error("tick 6: WasPressed should have expired")
	}
	if !v.IsDown() {
		t.Error("tick 6: should still be down")
	}
}

func TestVirtualButtonReleasedTick_MaxWhenNoneDown(t *testing.T) {
	m := NewMixer()
	a := m.Keyboard().Find("KeyA")
	b := m.Keyboard().Find("KeyB")
	a.Toggle(true, 1)
	a.Toggle(false, 7)
	b.Toggle(true, 2)
	b.Toggle(false, 9)

	v := m.CreateButton("fire")
	_ = v.Bind(a, b)

	if v.IsDown() {
		t.Error("should be up")
	}
	if got := v.ReleasedTick(); got != 9 {
		t.Errorf("ReleasedTick = %d, want 9", got)
	}
	if got := v.PressedTick(); got != Never {
		t.Errorf("PressedTick = %d, want Never", got)
	}

	tickTo(m, 9)
	if !v.WasReleased() {
		t.Error("tick 9: WasReleased should be true")
	}
}

func TestVirtualButtonReleasedTick_FirstDownShortCircuits(t *testing.T) {
	m := NewMixer()
	a := m.Keyboard().Find("KeyA")
	b := m.Keyboard().Find("KeyB")
	c := m.Keyboard().Find("KeyC")

	a.Toggle(true, 1)
	a.Toggle(false, 8) // up, released late
	b.Toggle(true, 2)
	b.Toggle(false, 3)
	b.Toggle(true, 4) // down, stale release at 3
	c.Toggle(true, 5)
	c.Toggle(false, 6)
	c.Toggle(true, 7) // down, release at 6

	v := m.CreateButton("fire")
	_ = v.Bind(a, b, c)

	if got := v.ReleasedTick(); got != 3 {
		t.Errorf("ReleasedTick = %d, want 3 (first down binding)", got)
	}
	if got := v.PressedTick(); got != 4 {
		t.Errorf("PressedTick = %d, want 4 (earliest down press)", got)
	}
}

func TestVirtualButtonEmpty(t *testing.T) {
	m := NewMixer()
	v := m.CreateButton("idle")
	if v.IsDown() || v.PressedTick() != Never || v.ReleasedTick() != Never {
		t.Errorf("empty: IsDown=%v pressed=%d released=%d", v.IsDown(), v.PressedTick(), v.ReleasedTick())
	}
	m.Tick()
	if v.WasPressed() || v.WasReleased() {
		t.Error("empty virtual button must never report edges")
	}
}

func TestVirtualButtonRejectsAxis(t *testing.T) {
	m := NewMixer()
	v := m.CreateButton("jump")
	if err := v.Bind("Space"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	err := v.Bind("KeyW", "Gamepad0.Axis1")
	if err == nil {
		t.Fatal("binding an axis id into a button should fail")
	}
	if !errors.Is(err, ErrNotButton) {
		t.Errorf("err = %v, want ErrNotButton", err)
	}
	var be *BindError
	if !errors.As(err, &be) || be.Target != "Gamepad0.Axis1" || be.Binding != "jump" {
		t.Errorf("BindError = %+v", be)
	}
	if msg := err.Error(); !strings.Contains(msg, "Gamepad0.Axis1") || !strings.Contains(msg, "jump") {
		t.Errorf("message %q should name the target and the virtual button", msg)
	}

	got := v.Bindings()
	if len(got) != 1 || got[0].ID() != "Space" {
		t.Errorf("rejected bind changed bindings: %v", ids(got))
	}
}

func TestVirtualButtonRejectsAxisNodes(t *testing.T) {
	m := NewMixer()
	v := m.CreateButton("jump")

	tests := []struct {
		name   string
		target any
	}{
		{"inverted axis id", "-Space"},
		{"bang on axis id", "!Gamepad0.Axis0"},
		{"axis node", NewConcreteAxis("stick")},
		{"virtual axis", m.CreateAxis("move")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Bind(tt.target); !errors.Is(err, ErrNotButton) {
				t.Errorf("err = %v, want ErrNotButton", err)
			}
		})
	}
	if len(v.Bindings()) != 0 {
		t.Errorf("bindings = %v, want none", ids(v.Bindings()))
	}
}

func TestVirtualButtonNested(t *testing.T) {
	m, inj := newTestMixer()

	confirm := m.CreateButton("confirm")
	if err := confirm.Bind("Enter", "Space"); err != nil {
		t.Fatal(err)
	}
	anyKey := m.CreateButton("any")
	// Space feeds both virtual buttons.
	if err := anyKey.Bind(confirm, "Space", "!Escape"); err != nil {
		t.Fatal(err)
	}
	if len(anyKey.Bindings()) != 3 {
		t.Fatalf("bindings = %v", ids(anyKey.Bindings()))
	}

	m.Tick()
	// "!Escape" is down while Escape is up.
	if !anyKey.IsDown() {
		t.Error("inverted Escape should hold the button down")
	}

	inj.KeyDown("Escape")
	m.Tick()
	if anyKey.IsDown() {
		t.Error("with Escape held and nothing else down, any should be up")
	}
	if !anyKey.WasReleased() {
		t.Error("releasing via the inverted binding should report a release edge")
	}

	inj.KeyDown("Space")
	m.Tick()
	if !confirm.WasPressed() || !anyKey.WasPressed() {
		t.Errorf("Space press: confirm=%v any=%v, want both pressed", confirm.WasPressed(), anyKey.WasPressed())
	}
}

func TestVirtualButtonClear(t *testing.T) {
	m, inj := newTestMixer()
	v := m.CreateButton("jump")
	_ = v.Bind("Space")
	inj.KeyDown("Space")
	m.Tick()

	v.Clear()
	if v.IsDown() || len(v.Bindings()) != 0 {
		t.Error("Clear should drop all bindings")
	}
}

func ids[T Axis](nodes []T) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
