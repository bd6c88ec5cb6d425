package inputmix

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// gamepadIDPattern matches "Gamepad<N>.Button<M>" and "Gamepad<N>.Axis<M>";
// N may be omitted.
var gamepadIDPattern = regexp.MustCompile(`^Gamepad(\d+)?\.(Button|Axis)(\d+)$`)

// gamepadSlot is the per-index state of one gamepad.
type gamepadSlot struct {
	index     int
	connected bool
	deadzone  float64
	buttons   map[int]*ConcreteButton
	axes      map[int]*ConcreteAxis
}

// Gamepad owns the concrete buttons and axes of every gamepad index that has
// been referenced. Connection events are buffered and applied during tick;
// button and axis samples are read from the listened source during tick.
type Gamepad struct {
	clock           *Clock
	slots           map[int]*gamepadSlot
	defaultDeadzone float64
	events          []GamepadEvent
	source          GamepadSource
	sourceID        uint32
	nextSourceID    uint32
	debug           bool
}

// NewGamepad creates a gamepad listener reading ticks from clock.
func NewGamepad(clock *Clock) *Gamepad {
	return &Gamepad{
		clock: clock,
		slots: make(map[int]*gamepadSlot),
	}
}

func (g *Gamepad) slot(index int) *gamepadSlot {
	s, ok := g.slots[index]
	if !ok {
		s = &gamepadSlot{
			index:    index,
			deadzone: g.defaultDeadzone,
			buttons:  make(map[int]*ConcreteButton),
			axes:     make(map[int]*ConcreteAxis),
		}
		g.slots[index] = s
	}
	return s
}

func (g *Gamepad) button(pad, index int) *ConcreteButton {
	s := g.slot(pad)
	b, ok := s.buttons[index]
	if !ok {
		b = NewConcreteButton(g.clock, fmt.Sprintf("Gamepad%d.Button%d", pad, index))
		s.buttons[index] = b
	}
	return b
}

func (g *Gamepad) axis(pad, index int) *ConcreteAxis {
	s := g.slot(pad)
	a, ok := s.axes[index]
	if !ok {
		a = NewConcreteAxis(fmt.Sprintf("Gamepad%d.Axis%d", pad, index))
		s.axes[index] = a
	}
	return a
}

// Button returns the concrete button at index on gamepad pad, creating it on
// first use.
func (g *Gamepad) Button(pad, index int) *ConcreteButton { return g.button(pad, index) }

// Axis returns the concrete axis at index on gamepad pad, creating it on
// first use.
func (g *Gamepad) Axis(pad, index int) *ConcreteAxis { return g.axis(pad, index) }

// Find resolves a gamepad id such as "Gamepad1.Button0" or "Gamepad.Axis2".
// When the id has no gamepad index, defaultPad is used. Ids outside the
// gamepad grammar, or with an index too large for an int, return nil.
func (g *Gamepad) Find(id string, defaultPad int) Axis {
	node, _ := g.lookup(id, defaultPad)
	return node
}

// lookup is Find that also reports whether id matched the gamepad grammar.
func (g *Gamepad) lookup(id string, defaultPad int) (Axis, bool) {
	m := gamepadIDPattern.FindStringSubmatch(id)
	if m == nil {
		return nil, false
	}
	pad := defaultPad
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			debugf(g.debug, "gamepad index out of range in %q", id)
			return nil, true
		}
		pad = n
	}
	index, err := strconv.Atoi(m[3])
	if err != nil {
		debugf(g.debug, "input index out of range in %q", id)
		return nil, true
	}
	if m[2] == "Button" {
		return g.button(pad, index), true
	}
	return g.axis(pad, index), true
}

// SetDefaultDeadzone sets the deadzone given to gamepad slots created from now
// on.
func (g *Gamepad) SetDefaultDeadzone(deadzone float64) {
	g.defaultDeadzone = deadzone
}

// SetDeadzone sets the raw axis deadzone for one gamepad. Samples with a
// magnitude below it are stored as 0.
func (g *Gamepad) SetDeadzone(pad int, deadzone float64) {
	g.slot(pad).deadzone = deadzone
}

// Deadzone returns the raw axis deadzone of a gamepad.
func (g *Gamepad) Deadzone(pad int) float64 {
	return g.slot(pad).deadzone
}

// Connected reports whether a gamepad is known to be plugged in as of the last
// tick.
func (g *Gamepad) Connected(pad int) bool {
	s, ok := g.slots[pad]
	return ok && s.connected
}

// Listen subscribes to connection events from src and samples it on every
// tick. Only one source is sampled at a time; the latest Listen wins. The
// returned function removes this subscription and stops sampling src unless
// another Listen has replaced it since.
func (g *Gamepad) Listen(src GamepadSource) func() {
	g.nextSourceID++
	id := g.nextSourceID
	g.source = src
	g.sourceID = id
	unsubscribe := src.SubscribeGamepads(g.push)
	return func() {
		unsubscribe()
		if g.sourceID == id {
			g.source = nil
			g.sourceID = 0
		}
	}
}

func (g *Gamepad) push(ev GamepadEvent) {
	g.events = append(g.events, ev)
}

// tick applies buffered connection events, then samples every referenced
// button and axis of each connected gamepad.
func (g *Gamepad) tick() {
	now := g.clock.Now()
	for _, ev := range g.events {
		s := g.slot(ev.Pad)
		if ev.Connected {
			s.connected = true
			debugf(g.debug, "gamepad %d connected", ev.Pad)
			continue
		}
		s.connected = false
		g.release(s, now)
		debugf(g.debug, "gamepad %d disconnected", ev.Pad)
	}
	g.events = g.events[:0]

	if g.source == nil {
		return
	}
	for _, s := range g.slots {
		if !s.connected {
			continue
		}
		for index, b := range s.buttons {
			b.Toggle(g.source.ButtonPressed(s.index, index), now)
		}
		for index, a := range s.axes {
			raw := g.source.AxisValue(s.index, index)
			if math.Abs(raw) < s.deadzone {
				raw = 0
			}
			a.Set(raw)
		}
	}
}

// release forces every button of a gamepad up and every axis to rest so no
// input stays stuck after an unplug.
func (g *Gamepad) release(s *gamepadSlot, now Tick) {
	for _, b := range s.buttons {
		b.Toggle(false, now)
	}
	for _, a := range s.axes {
		a.Set(0)
	}
}
