package inputmix

import (
	"fmt"
	"math"
	"slices"
)

const defaultAxisDeadzone = 0.1

// bindingSet holds the nodes bound to a virtual node keyed by node id.
// Insertion order is kept; rebinding an id replaces the node in place.
type bindingSet[T Axis] struct {
	nodes []T
	index map[string]int
}

func (s *bindingSet[T]) set(n T) {
	id := n.ID()
	if i, ok := s.index[id]; ok {
		s.nodes[i] = n
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[id] = len(s.nodes)
	s.nodes = append(s.nodes, n)
}

func (s *bindingSet[T]) clear() {
	s.nodes = nil
	clear(s.index)
}

// resolveTargets turns bind targets into nodes of kind T. Every target is
// resolved before anything is returned so that a rejected call binds nothing.
func resolveTargets[T Axis](m *Mixer, binding string, pad int, targets []any) ([]T, error) {
	out := make([]T, 0, len(targets))
	for _, target := range targets {
		switch t := target.(type) {
		case string:
			found := m.FindPad(t, pad)
			if found == nil {
				return nil, &BindError{Binding: binding, Target: t, Err: ErrUnresolved}
			}
			n, ok := found.(T)
			if !ok {
				return nil, &BindError{Binding: binding, Target: t, Err: ErrNotButton}
			}
			out = append(out, n)
		case T:
			out = append(out, t)
		case Axis:
			return nil, &BindError{Binding: binding, Target: t.ID(), Err: ErrNotButton}
		default:
			return nil, &BindError{Binding: binding, Target: fmt.Sprintf("%T", target), Err: ErrUnsupportedTarget}
		}
	}
	return out, nil
}

// --- VirtualAxis ---

// VirtualAxis sums any number of axes and buttons into one logical axis.
// Create one with Mixer.CreateAxis.
type VirtualAxis struct {
	mixer    *Mixer
	id       string
	deadzone float64
	axes     bindingSet[Axis]
}

// ID returns the name given to Mixer.CreateAxis.
func (v *VirtualAxis) ID() string { return v.id }

// Deadzone returns the per-binding deadzone threshold.
func (v *VirtualAxis) Deadzone() float64 { return v.deadzone }

// WithDeadzone sets the threshold below which a binding's value counts as 0.
func (v *VirtualAxis) WithDeadzone(deadzone float64) *VirtualAxis {
	v.deadzone = deadzone
	return v
}

// Bind binds targets using gamepad 0 for ids without an explicit gamepad
// index. See BindPad.
func (v *VirtualAxis) Bind(targets ...any) error {
	return v.BindPad(0, targets...)
}

// BindPad binds each target, which is either a symbolic id resolved through
// Mixer.FindPad with pad as the default gamepad index, or an Axis. Nodes are
// keyed by their own id, so two ids resolving to the same node bind once.
// If any target fails nothing is bound.
func (v *VirtualAxis) BindPad(pad int, targets ...any) error {
	nodes, err := resolveTargets[Axis](v.mixer, v.id, pad, targets)
	if err != nil {
		return v.mixer.bindFailed(err)
	}
	for _, n := range nodes {
		v.axes.set(n)
	}
	return nil
}

// Clear removes all bindings.
func (v *VirtualAxis) Clear() *VirtualAxis {
	v.axes.clear()
	return v
}

// Bindings returns the bound nodes in binding order.
func (v *VirtualAxis) Bindings() []Axis {
	return slices.Clone(v.axes.nodes)
}

// Value sums the bound values, zeroing any whose magnitude is under the
// deadzone, and clamps the sum to [-1, 1].
func (v *VirtualAxis) Value() float64 {
	var sum float64
	for _, a := range v.axes.nodes {
		val := a.Value()
		if math.Abs(val) < v.deadzone {
			continue
		}
		sum += val
	}
	return clampUnit(sum)
}

// --- VirtualButton ---

// VirtualButton is down while any of its bound buttons is down.
// Create one with Mixer.CreateButton.
type VirtualButton struct {
	mixer   *Mixer
	id      string
	buttons bindingSet[Button]
}

// ID returns the name given to Mixer.CreateButton.
func (v *VirtualButton) ID() string { return v.id }

// Bind binds targets using gamepad 0 for ids without an explicit gamepad
// index. See BindPad.
func (v *VirtualButton) Bind(targets ...any) error {
	return v.BindPad(0, targets...)
}

// BindPad binds each target, which is either a symbolic id or a Button.
// A target that resolves to a plain axis is rejected with a *BindError
// wrapping ErrNotButton, and nothing from the call is bound.
func (v *VirtualButton) BindPad(pad int, targets ...any) error {
	nodes, err := resolveTargets[Button](v.mixer, v.id, pad, targets)
	if err != nil {
		return v.mixer.bindFailed(err)
	}
	for _, n := range nodes {
		v.buttons.set(n)
	}
	return nil
}

// Clear removes all bindings.
func (v *VirtualButton) Clear() *VirtualButton {
	v.buttons.clear()
	return v
}

// Bindings returns the bound buttons in binding order.
func (v *VirtualButton) Bindings() []Button {
	return slices.Clone(v.buttons.nodes)
}

// IsDown reports whether any bound button is down.
func (v *VirtualButton) IsDown() bool {
	for _, b := range v.buttons.nodes {
		if b.IsDown() {
			return true
		}
	}
	return false
}

// Value returns 1 while the button is down, else 0.
func (v *VirtualButton) Value() float64 { return boolValue(v.IsDown()) }

// PressedTick returns the earliest press tick among the bound buttons that
// are currently down, or Never if none are down. The ongoing down state is
// attributed to whichever press started it.
func (v *VirtualButton) PressedTick() Tick {
	first := Never
	found := false
	for _, b := range v.buttons.nodes {
		if !b.IsDown() {
			continue
		}
		t := b.PressedTick()
		if !found || t < first {
			first = t
			found = true
		}
	}
	return first
}

// ReleasedTick returns, if some bound button is down, the release tick of the
// first such button in binding order. Otherwise it returns the latest release
// tick among all bindings.
//
// The asymmetry with PressedTick is deliberate and WasReleased depends on it:
// while anything is held the result is a stale tick, so no release edge is
// reported.
func (v *VirtualButton) ReleasedTick() Tick {
	last := Never
	for _, b := range v.buttons.nodes {
		if b.IsDown() {
			return b.ReleasedTick()
		}
		last = max(last, b.ReleasedTick())
	}
	return last
}

// WasPressed reports whether PressedTick is the mixer's current tick.
func (v *VirtualButton) WasPressed() bool {
	return v.PressedTick() == v.mixer.Now()
}

// WasReleased reports whether ReleasedTick is the mixer's current tick.
func (v *VirtualButton) WasReleased() bool {
	return v.ReleasedTick() == v.mixer.Now()
}
