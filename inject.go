package inputmix

// injectedPad is the raw state of one synthetic gamepad.
type injectedPad struct {
	connected bool
	buttons   map[int]bool
	axes      map[int]float64
}

// Injector is a synthetic Source. Key and connection events are delivered to
// subscribers immediately, exactly like a device callback, and so take effect
// on the next Mixer.Tick. Gamepad button and axis state is held until changed
// and sampled on every tick. Useful for tests, replays and bots.
type Injector struct {
	keys   subscribers[KeyEvent]
	pads   subscribers[GamepadEvent]
	state  map[int]*injectedPad
	script *ScriptRunner
}

// NewInjector creates an injector with no gamepads connected.
func NewInjector() *Injector {
	return &Injector{state: make(map[int]*injectedPad)}
}

// SubscribeKeys implements KeySource.
func (inj *Injector) SubscribeKeys(fn func(KeyEvent)) func() {
	return inj.keys.add(fn)
}

// SubscribeGamepads implements GamepadSource.
func (inj *Injector) SubscribeGamepads(fn func(GamepadEvent)) func() {
	return inj.pads.add(fn)
}

// KeyDown queues a key press.
func (inj *Injector) KeyDown(key string) {
	inj.keys.emit(KeyEvent{Key: key, Down: true})
}

// KeyUp queues a key release.
func (inj *Injector) KeyUp(key string) {
	inj.keys.emit(KeyEvent{Key: key, Down: false})
}

// SendKey queues a raw event with separate logical and physical names.
func (inj *Injector) SendKey(ev KeyEvent) {
	inj.keys.emit(ev)
}

// Tap queues a press followed by a release of the same key. Both land in the
// same tick, so the key reports WasPressed and WasReleased but is not down.
func (inj *Injector) Tap(key string) {
	inj.KeyDown(key)
	inj.KeyUp(key)
}

func (inj *Injector) pad(index int) *injectedPad {
	p, ok := inj.state[index]
	if !ok {
		p = &injectedPad{buttons: make(map[int]bool), axes: make(map[int]float64)}
		inj.state[index] = p
	}
	return p
}

// Connect plugs in a gamepad.
func (inj *Injector) Connect(pad int) {
	inj.pad(pad).connected = true
	inj.pads.emit(GamepadEvent{Pad: pad, Connected: true})
}

// Disconnect unplugs a gamepad and forgets its raw state.
func (inj *Injector) Disconnect(pad int) {
	p := inj.pad(pad)
	p.connected = false
	clear(p.buttons)
	clear(p.axes)
	inj.pads.emit(GamepadEvent{Pad: pad, Connected: false})
}

// PressButton holds a gamepad button down.
func (inj *Injector) PressButton(pad, button int) {
	inj.pad(pad).buttons[button] = true
}

// ReleaseButton lets a gamepad button go.
func (inj *Injector) ReleaseButton(pad, button int) {
	delete(inj.pad(pad).buttons, button)
}

// SetAxis sets a raw gamepad axis value.
func (inj *Injector) SetAxis(pad, axis int, value float64) {
	inj.pad(pad).axes[axis] = value
}

// ButtonPressed implements GamepadSource.
func (inj *Injector) ButtonPressed(pad, button int) bool {
	p, ok := inj.state[pad]
	return ok && p.connected && p.buttons[button]
}

// AxisValue implements GamepadSource.
func (inj *Injector) AxisValue(pad, axis int) float64 {
	p, ok := inj.state[pad]
	if !ok || !p.connected {
		return 0
	}
	return p.axes[axis]
}

// SetScript attaches a script runner. It advances by one frame on every Poll.
func (inj *Injector) SetScript(r *ScriptRunner) {
	inj.script = r
}

// Poll implements Poller.
func (inj *Injector) Poll() {
	if inj.script != nil {
		inj.script.step(inj)
	}
}
