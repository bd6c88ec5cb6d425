package inputmix

// keyTransition is one buffered raw key event.
type keyTransition struct {
	id   string
	down bool
}

// Keyboard owns one ConcreteButton per referenced key id. Raw events are
// buffered by the Listen callback and only applied during tick.
type Keyboard struct {
	clock  *Clock
	keys   map[string]*ConcreteButton
	events []keyTransition
}

// NewKeyboard creates a keyboard listener reading ticks from clock.
func NewKeyboard(clock *Clock) *Keyboard {
	return &Keyboard{
		clock: clock,
		keys:  make(map[string]*ConcreteButton),
	}
}

// Find returns the button for a key id, creating it on first use. Any
// non-empty string is a valid key id; the empty string returns nil.
func (k *Keyboard) Find(id string) *ConcreteButton {
	if id == "" {
		return nil
	}
	key, ok := k.keys[id]
	if !ok {
		key = NewConcreteButton(k.clock, id)
		k.keys[id] = key
	}
	return key
}

// Listen subscribes to src. Each raw event is buffered under its logical key
// and, when it differs, under its physical code. The returned function
// removes only this subscription.
func (k *Keyboard) Listen(src KeySource) func() {
	return src.SubscribeKeys(k.push)
}

func (k *Keyboard) push(ev KeyEvent) {
	if ev.Key != "" {
		k.events = append(k.events, keyTransition{id: ev.Key, down: ev.Down})
	}
	if ev.Code != "" && ev.Code != ev.Key {
		k.events = append(k.events, keyTransition{id: ev.Code, down: ev.Down})
	}
}

// tick drains buffered events in arrival order at the current tick. Keys
// nobody has looked up are skipped. A press and release of the same key in one
// frame stamps both edges, so WasPressed still fires for that tick.
func (k *Keyboard) tick() {
	now := k.clock.Now()
	for _, ev := range k.events {
		key, ok := k.keys[ev.id]
		if !ok {
			continue
		}
		key.Toggle(ev.down, now)
	}
	clear(k.events)
	k.events = k.events[:0]
}
