package inputmix

// Tick counts logical frames. The Mixer advances it exactly once per Tick call.
type Tick int64

// Never is the tick reported by buttons that have not yet been pressed or
// released. It never equals a live clock value.
const Never Tick = -1

// Clock is the shared tick counter. A single Clock is owned by the Mixer and
// handed by pointer to every listener and concrete node, so all of them see
// the same current tick.
type Clock struct {
	now Tick
}

// Now returns the current tick.
func (c *Clock) Now() Tick {
	return c.now
}

func (c *Clock) advance() {
	c.now++
}

// Axis is a continuous input with a value in [-1, 1].
type Axis interface {
	ID() string
	Value() float64
}

// Button is a discrete input. Its Value is 1 while down and 0 otherwise.
//
// WasPressed and WasReleased are derived from the edge ticks: they are true
// only during the tick on which the corresponding transition happened.
type Button interface {
	Axis
	IsDown() bool
	WasPressed() bool
	WasReleased() bool
	PressedTick() Tick
	ReleasedTick() Tick
}

// boolValue converts a down state to a button value.
func boolValue(down bool) float64 {
	if down {
		return 1
	}
	return 0
}

// clampUnit clamps v to [-1, 1].
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
