package inputmix

import "slices"

// KeyEvent is a raw key transition. Key is the layout-dependent (logical)
// name and Code the physical key; either may be empty.
type KeyEvent struct {
	Key  string
	Code string
	Down bool
}

// GamepadEvent reports a gamepad being plugged in or removed.
type GamepadEvent struct {
	Pad       int
	Connected bool
}

// KeySource delivers raw key transitions. The returned function removes the
// subscription it belongs to and nothing else.
type KeySource interface {
	SubscribeKeys(fn func(KeyEvent)) (unsubscribe func())
}

// GamepadSource delivers connection events and answers raw samples for
// connected gamepads. Out of range buttons read as released and out of range
// axes as 0.
type GamepadSource interface {
	SubscribeGamepads(fn func(GamepadEvent)) (unsubscribe func())
	ButtonPressed(pad, button int) bool
	AxisValue(pad, axis int) float64
}

// Source is a device backend providing both keyboard and gamepad input.
type Source interface {
	KeySource
	GamepadSource
}

// Poller is implemented by sources that must be pumped once per frame to
// produce events. Mixer.Tick polls listened sources before advancing.
type Poller interface {
	Poll()
}

// --- Subscriber registry ---

type subscriber[E any] struct {
	id      uint32
	fn      func(E)
	removed bool
}

// subscribers is an id-keyed callback list. Removal is by id, so a stale
// unsubscribe can never remove somebody else's callback. The list is replaced
// on removal rather than edited, so emit may run while callbacks unsubscribe.
type subscribers[E any] struct {
	list   []*subscriber[E]
	nextID uint32
}

func (s *subscribers[E]) add(fn func(E)) func() {
	s.nextID++
	id := s.nextID
	s.list = append(s.list, &subscriber[E]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *subscribers[E]) remove(id uint32) {
	for i, sub := range s.list {
		if sub.id == id {
			sub.removed = true
			s.list = slices.Concat(s.list[:i], s.list[i+1:])
			return
		}
	}
}

func (s *subscribers[E]) emit(e E) {
	for _, sub := range s.list {
		if !sub.removed {
			sub.fn(e)
		}
	}
}
