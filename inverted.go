package inputmix

// InvertedAxis reports the negated value of the wrapped axis. It holds no
// state of its own.
type InvertedAxis struct {
	axis Axis
}

// NewInvertedAxis wraps a. Its id is "-" followed by the wrapped id.
func NewInvertedAxis(a Axis) *InvertedAxis {
	return &InvertedAxis{axis: a}
}

// ID returns the wrapped id prefixed with "-".
func (a *InvertedAxis) ID() string { return "-" + a.axis.ID() }

// Value returns the negated wrapped value.
func (a *InvertedAxis) Value() float64 { return -a.axis.Value() }

// Unwrap returns the wrapped axis.
func (a *InvertedAxis) Unwrap() Axis { return a.axis }

// InvertedButton counts as down while the wrapped button is up, and swaps the
// roles of its press and release edges.
type InvertedButton struct {
	button Button
}

// NewInvertedButton wraps b. Its id is "!" followed by the wrapped id.
func NewInvertedButton(b Button) *InvertedButton {
	return &InvertedButton{button: b}
}

// ID returns the wrapped id prefixed with "!".
func (b *InvertedButton) ID() string { return "!" + b.button.ID() }

// IsDown reports whether the wrapped button is up.
func (b *InvertedButton) IsDown() bool { return !b.button.IsDown() }

// Value returns 1 while the wrapped button is up, else 0.
func (b *InvertedButton) Value() float64 { return boolValue(b.IsDown()) }

// PressedTick is the wrapped button's release tick.
func (b *InvertedButton) PressedTick() Tick { return b.button.ReleasedTick() }

// ReleasedTick is the wrapped button's press tick.
func (b *InvertedButton) ReleasedTick() Tick { return b.button.PressedTick() }

// WasPressed reports whether the wrapped button was released this tick.
func (b *InvertedButton) WasPressed() bool { return b.button.WasReleased() }

// WasReleased reports whether the wrapped button was pressed this tick.
func (b *InvertedButton) WasReleased() bool { return b.button.WasPressed() }

// Unwrap returns the wrapped button.
func (b *InvertedButton) Unwrap() Button { return b.button }
