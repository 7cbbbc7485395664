//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package terminal

import (
	"errors"

	"golang.org/x/term"
)

// attrs wraps the opaque x/term state where termios ioctls are unavailable.
type attrs struct {
	state *term.State
}

var errNoState = errors.New("terminal: no saved state")

func captureAttrs(fd int) (attrs, error) {
	st, err := term.GetState(fd)
	if err != nil {
		return attrs{}, err
	}
	return attrs{state: st}, nil
}

// applyRaw falls back to x/term's raw mode, which also disables signal keys.
func applyRaw(fd int, _ attrs) error {
	_, err := term.MakeRaw(fd)
	return err
}

func applyCooked(fd int, saved attrs) error {
	if saved.state == nil {
		return errNoState
	}
	return term.Restore(fd, saved.state)
}
