package inputmix

import "slices"

// EventType identifies a kind of button edge event.
type EventType uint8

const (
	EventPressed  EventType = iota // fires on the tick a button goes down
	EventReleased                  // fires on the tick a button goes up
)

func (t EventType) String() string {
	switch t {
	case EventPressed:
		return "pressed"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// ButtonEvent describes one edge of a watched button.
type ButtonEvent struct {
	Type EventType
	ID   string
	Tick Tick
}

// EventStore is the interface for optional ECS integration. When set on a
// Mixer, edges of watched buttons are forwarded to it after every tick.
type EventStore interface {
	EmitEvent(event ButtonEvent)
}

// --- Handler registry ---

type buttonHandler struct {
	id      uint32
	button  Button
	fn      func(ButtonEvent)
	removed bool
}

// Handler lists are replaced, never edited in place, so a dispatch loop keeps
// a stable view while callbacks remove handlers.
type handlerRegistry struct {
	pressed  []*buttonHandler
	released []*buttonHandler
	watched  []Button
	nextID   uint32
}

// CallbackHandle allows removing a registered edge callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// harmless.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPressed:
		h.reg.pressed = removeButtonHandler(h.reg.pressed, h.id)
	case EventReleased:
		h.reg.released = removeButtonHandler(h.reg.released, h.id)
	}
}

func removeButtonHandler(s []*buttonHandler, id uint32) []*buttonHandler {
	for i, h := range s {
		if h.id == id {
			h.removed = true
			return slices.Concat(s[:i], s[i+1:])
		}
	}
	return s
}

// OnPressed registers fn to run after any tick on which b was pressed. A nil
// button or callback registers nothing and returns an inert handle.
func (m *Mixer) OnPressed(b Button, fn func(ButtonEvent)) CallbackHandle {
	if b == nil || fn == nil {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.pressed = append(m.handlers.pressed, &buttonHandler{id: id, button: b, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventPressed}
}

// OnReleased registers fn to run after any tick on which b was released.
func (m *Mixer) OnReleased(b Button, fn func(ButtonEvent)) CallbackHandle {
	if b == nil || fn == nil {
		return CallbackHandle{}
	}
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.released = append(m.handlers.released, &buttonHandler{id: id, button: b, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventReleased}
}

// Watch adds buttons whose edges are forwarded to the EventStore. Buttons are
// matched by id; watching an id twice keeps the latest node. Nil entries are
// skipped.
func (m *Mixer) Watch(buttons ...Button) {
	for _, b := range buttons {
		if b == nil {
			continue
		}
		replaced := false
		for i, w := range m.handlers.watched {
			if w.ID() == b.ID() {
				m.handlers.watched[i] = b
				replaced = true
				break
			}
		}
		if !replaced {
			m.handlers.watched = append(m.handlers.watched, b)
		}
	}
}

// Unwatch stops forwarding edges of the button with the given id.
func (m *Mixer) Unwatch(id string) {
	w := m.handlers.watched
	for i := range w {
		if w[i].ID() == id {
			m.handlers.watched = slices.Concat(w[:i], w[i+1:])
			return
		}
	}
}

// SetEventStore sets the optional ECS bridge.
func (m *Mixer) SetEventStore(store EventStore) {
	m.store = store
}

// --- Event dispatch ---

// dispatchEvents runs edge callbacks and feeds the ECS bridge. Called at the
// end of Tick, once all listeners have drained. Handlers removed by an earlier
// callback of the same dispatch do not run.
func (m *Mixer) dispatchEvents() {
	now := m.clock.Now()
	for _, h := range m.handlers.pressed {
		if !h.removed && h.button.WasPressed() {
			h.fn(ButtonEvent{Type: EventPressed, ID: h.button.ID(), Tick: now})
		}
	}
	for _, h := range m.handlers.released {
		if !h.removed && h.button.WasReleased() {
			h.fn(ButtonEvent{Type: EventReleased, ID: h.button.ID(), Tick: now})
		}
	}
	if m.store == nil {
		return
	}
	for _, b := range m.handlers.watched {
		if b.WasPressed() {
			m.store.EmitEvent(ButtonEvent{Type: EventPressed, ID: b.ID(), Tick: now})
		}
		if b.WasReleased() {
			m.store.EmitEvent(ButtonEvent{Type: EventReleased, ID: b.ID(), Tick: now})
		}
	}
}
