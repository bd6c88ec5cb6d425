package inputmix

// Mixer is the top-level object that owns the tick clock, the keyboard and
// gamepad listeners, and the edge event registry.
type Mixer struct {
	clock    Clock
	keyboard *Keyboard
	gamepad  *Gamepad
	store    EventStore
	debug    bool

	handlers handlerRegistry
	pollers  []pollerEntry
	nextPoll uint32
}

type pollerEntry struct {
	id     uint32
	poller Poller
}

// NewMixer creates a mixer at tick 0 with empty listeners.
func NewMixer() *Mixer {
	m := &Mixer{}
	m.keyboard = NewKeyboard(&m.clock)
	m.gamepad = NewGamepad(&m.clock)
	return m
}

// Keyboard returns the keyboard listener.
func (m *Mixer) Keyboard() *Keyboard { return m.keyboard }

// Gamepad returns the gamepad listener.
func (m *Mixer) Gamepad() *Gamepad { return m.gamepad }

// Clock returns the shared tick clock.
func (m *Mixer) Clock() *Clock { return &m.clock }

// Now returns the current tick.
func (m *Mixer) Now() Tick { return m.clock.Now() }

// CreateButton creates an unbound virtual button.
func (m *Mixer) CreateButton(id string) *VirtualButton {
	return &VirtualButton{mixer: m, id: id}
}

// CreateAxis creates an unbound virtual axis with the default deadzone.
func (m *Mixer) CreateAxis(id string) *VirtualAxis {
	return &VirtualAxis{mixer: m, id: id, deadzone: defaultAxisDeadzone}
}

// Find resolves a symbolic id using gamepad 0 as the default. See FindPad.
func (m *Mixer) Find(id string) Axis {
	return m.FindPad(id, 0)
}

// FindPad resolves a symbolic id to a node, or nil when the id matches
// neither listener.
//
// The body is looked up on the gamepad first ("Gamepad1.Button0",
// "Gamepad.Axis2", using pad when the index is omitted) and otherwise treated
// as a key id. A body in gamepad form whose indexes overflow an int is
// unresolved; it never falls back to the keyboard. Two prefixes are understood:
//
//	"-"  inverts an axis, or a button used as an axis: "-Gamepad0.Axis1", "-KeyA"
//	"!"  inverts a button, so it counts as down while the key is up: "!KeyS"
//
// "!" on an id that resolves to a plain axis has no effect. "-" always yields
// an axis, even on a button.
func (m *Mixer) FindPad(id string, pad int) Axis {
	p := parseID(id)

	found, isGamepad := m.gamepad.lookup(p.body, pad)
	if !isGamepad {
		if key := m.keyboard.Find(p.body); key != nil {
			found = key
		}
	}
	m.debugCheckUnresolved(id, found)
	if found == nil {
		return nil
	}

	if p.invertButton {
		if b, ok := found.(Button); ok {
			found = NewInvertedButton(b)
		}
	}
	if p.invertAxis {
		found = NewInvertedAxis(found)
	}
	return found
}

// FindButton is like Find but only succeeds when the id resolves to a button.
func (m *Mixer) FindButton(id string) (Button, bool) {
	b, ok := m.Find(id).(Button)
	return b, ok
}

// Listen subscribes both listeners to src. If src is a Poller it is pumped at
// the start of every Tick. The returned function undoes exactly this Listen.
func (m *Mixer) Listen(src Source) func() {
	unlistenKeyboard := m.keyboard.Listen(src)
	unlistenGamepad := m.gamepad.Listen(src)

	var pollID uint32
	if p, ok := src.(Poller); ok {
		m.nextPoll++
		pollID = m.nextPoll
		m.pollers = append(m.pollers, pollerEntry{id: pollID, poller: p})
	}

	return func() {
		unlistenKeyboard()
		unlistenGamepad()
		if pollID != 0 {
			m.removePoller(pollID)
		}
	}
}

func (m *Mixer) removePoller(id uint32) {
	for i := range m.pollers {
		if m.pollers[i].id == id {
			copy(m.pollers[i:], m.pollers[i+1:])
			m.pollers[len(m.pollers)-1] = pollerEntry{}
			m.pollers = m.pollers[:len(m.pollers)-1]
			return
		}
	}
}

// Tick processes all input received since the last tick. Call it exactly once
// per frame, before reading any node: sources are polled, the clock advances,
// then the keyboard and gamepad apply their buffered events in order and edge
// callbacks run.
func (m *Mixer) Tick() {
	for _, p := range m.pollers {
		p.poller.Poll()
	}
	m.clock.advance()
	m.keyboard.tick()
	m.gamepad.tick()
	m.dispatchEvents()
}

// SetDebugMode enables or disables debug mode. When enabled, rejected binds,
// unresolvable ids and gamepad connection changes are logged to stderr.
func (m *Mixer) SetDebugMode(enabled bool) {
	m.debug = enabled
	m.gamepad.debug = enabled
}
