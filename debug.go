package inputmix

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr when enabled.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[inputmix] "+format+"\n", args...)
}

// bindFailed reports a rejected bind on stderr in debug mode and passes the
// error through.
func (m *Mixer) bindFailed(err error) error {
	debugf(m.debug, "warning: %v", err)
	return err
}

// debugCheckUnresolved warns when a lookup produced no node.
func (m *Mixer) debugCheckUnresolved(id string, found Axis) {
	if found == nil {
		debugf(m.debug, "warning: no input matches %q", id)
	}
}
