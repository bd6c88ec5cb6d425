package inputmix

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads the keyboard and gamepads through Ebitengine. Ebitengine
// has no input callbacks, so the source turns per-frame state into events in
// Poll, which Mixer.Tick calls from inside ebiten.Game.Update.
//
// Key events carry the physical key name (ebiten.Key.String, e.g. "A",
// "ArrowUp", "Space") as Code and the layout-dependent name from
// ebiten.KeyName as Key. Gamepad indices are ebiten.GamepadID values.
type EbitenSource struct {
	keys subscribers[KeyEvent]
	pads subscribers[GamepadEvent]

	keyBuf     []ebiten.Key
	padIDs     []ebiten.GamepadID
	prevPadIDs []ebiten.GamepadID
}

// NewEbitenSource creates a source for use with Mixer.Listen.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// SubscribeKeys implements KeySource.
func (s *EbitenSource) SubscribeKeys(fn func(KeyEvent)) func() {
	return s.keys.add(fn)
}

// SubscribeGamepads implements GamepadSource.
func (s *EbitenSource) SubscribeGamepads(fn func(GamepadEvent)) func() {
	return s.pads.add(fn)
}

// Poll emits the key edges and gamepad connection changes of this frame.
func (s *EbitenSource) Poll() {
	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.keys.emit(ebitenKeyEvent(k, true))
	}
	s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.keys.emit(ebitenKeyEvent(k, false))
	}

	s.padIDs = ebiten.AppendGamepadIDs(s.padIDs[:0])
	for _, id := range s.prevPadIDs {
		if !slices.Contains(s.padIDs, id) {
			s.pads.emit(GamepadEvent{Pad: int(id), Connected: false})
		}
	}
	for _, id := range s.padIDs {
		if !slices.Contains(s.prevPadIDs, id) {
			s.pads.emit(GamepadEvent{Pad: int(id), Connected: true})
		}
	}
	s.prevPadIDs = append(s.prevPadIDs[:0], s.padIDs...)
}

func ebitenKeyEvent(k ebiten.Key, down bool) KeyEvent {
	return KeyEvent{Key: ebiten.KeyName(k), Code: k.String(), Down: down}
}

// ButtonPressed implements GamepadSource.
func (s *EbitenSource) ButtonPressed(pad, button int) bool {
	id := ebiten.GamepadID(pad)
	if button < 0 || button >= ebiten.GamepadButtonCount(id) {
		return false
	}
	return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(button))
}

// AxisValue implements GamepadSource.
func (s *EbitenSource) AxisValue(pad, axis int) float64 {
	id := ebiten.GamepadID(pad)
	if axis < 0 || axis >= ebiten.GamepadAxisCount(id) {
		return 0
	}
	return ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(axis))
}
