package inputmix

// ConcreteAxis is a leaf axis written directly by its owning listener.
type ConcreteAxis struct {
	id    string
	value float64
}

// NewConcreteAxis creates an axis at rest.
func NewConcreteAxis(id string) *ConcreteAxis {
	return &ConcreteAxis{id: id}
}

// ID returns the physical id, e.g. "Gamepad0.Axis1".
func (a *ConcreteAxis) ID() string { return a.id }

// Value returns the last sample written by the listener.
func (a *ConcreteAxis) Value() float64 { return a.value }

// Set stores an already filtered sample. Only the owning listener should call
// this, and only while draining a tick.
func (a *ConcreteAxis) Set(v float64) {
	a.value = clampUnit(v)
}

// ConcreteButton is a leaf button written directly by its owning listener.
// Edge ticks start at Never.
type ConcreteButton struct {
	clock        *Clock
	id           string
	down         bool
	pressedTick  Tick
	releasedTick Tick
}

// NewConcreteButton creates a released button that reads the current tick
// from clock.
func NewConcreteButton(clock *Clock, id string) *ConcreteButton {
	return &ConcreteButton{
		clock:        clock,
		id:           id,
		pressedTick:  Never,
		releasedTick: Never,
	}
}

// ID returns the physical id, e.g. "KeyA" or "Gamepad1.Button0".
func (b *ConcreteButton) ID() string { return b.id }

// Value returns 1 while down, 0 otherwise.
func (b *ConcreteButton) Value() float64 { return boolValue(b.down) }

// IsDown reports whether the button is held.
func (b *ConcreteButton) IsDown() bool { return b.down }

// PressedTick returns the tick of the last up→down edge.
func (b *ConcreteButton) PressedTick() Tick { return b.pressedTick }

// ReleasedTick returns the tick of the last down→up edge.
func (b *ConcreteButton) ReleasedTick() Tick { return b.releasedTick }

// WasPressed reports whether the button went down during the current tick.
func (b *ConcreteButton) WasPressed() bool {
	return b.pressedTick == b.clock.Now()
}

// WasReleased reports whether the button went up during the current tick.
func (b *ConcreteButton) WasReleased() bool {
	return b.releasedTick == b.clock.Now()
}

// Toggle applies a raw pressed sample. State changes only on an edge: pressing
// a held button or releasing a released one does nothing, so repeated raw
// events within a tick cannot move the edge ticks.
func (b *ConcreteButton) Toggle(pressed bool, tick Tick) {
	if pressed == b.down {
		return
	}
	b.down = pressed
	if pressed {
		b.pressedTick = tick
	} else {
		b.releasedTick = tick
	}
}
