package inputmix

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved means a symbolic id matched neither the gamepad nor the
	// keyboard id grammar.
	ErrUnresolved = errors.New("unresolved input id")

	// ErrNotButton means a virtual button was asked to bind a node that is
	// only an axis.
	ErrNotButton = errors.New("expected button")

	// ErrUnsupportedTarget means a bind target was neither a string id nor a
	// node of the required kind.
	ErrUnsupportedTarget = errors.New("unsupported bind target")
)

// BindError reports a rejected Bind call. A rejected call leaves the virtual
// node's bindings untouched.
type BindError struct {
	Binding string // id of the virtual node being bound
	Target  string // offending target id, or its Go type for non-string targets
	Err     error
}

// Error implements error.
func (e *BindError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotButton):
		return fmt.Sprintf("expected button, but got %q while binding %q", e.Target, e.Binding)
	case errors.Is(e.Err, ErrUnresolved):
		return fmt.Sprintf("cannot resolve %q while binding %q", e.Target, e.Binding)
	default:
		return fmt.Sprintf("bind %q to %q: %v", e.Target, e.Binding, e.Err)
	}
}

func (e *BindError) Unwrap() error { return e.Err }
