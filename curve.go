package inputmix

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CurvedAxis reshapes the response of another axis with an easing function.
// The magnitude of the wrapped value is fed through fn as the tween time over
// a unit duration; the sign is preserved. ease.InQuad, for example, gives
// finer control near the stick center.
type CurvedAxis struct {
	id   string
	axis Axis
	fn   ease.TweenFunc
}

// NewCurvedAxis wraps a. A nil fn behaves like ease.Linear.
func NewCurvedAxis(id string, a Axis, fn ease.TweenFunc) *CurvedAxis {
	if fn == nil {
		fn = ease.Linear
	}
	return &CurvedAxis{id: id, axis: a, fn: fn}
}

// ID returns the id given to NewCurvedAxis.
func (c *CurvedAxis) ID() string { return c.id }

// Value returns the shaped value in [-1, 1].
func (c *CurvedAxis) Value() float64 {
	v := c.axis.Value()
	if v == 0 {
		return 0
	}
	mag := math.Min(math.Abs(v), 1)
	shaped := float64(c.fn(float32(mag), 0, 1, 1))
	shaped = math.Max(0, math.Min(1, shaped))
	return math.Copysign(shaped, v)
}

// Unwrap returns the wrapped axis.
func (c *CurvedAxis) Unwrap() Axis { return c.axis }
