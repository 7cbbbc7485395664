//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

// attrs is a snapshot of the line discipline settings.
type attrs = unix.Termios

// rawLflags are the local flags cleared in raw mode and set again on restore.
const rawLflags = unix.ECHO | unix.ICANON

func captureAttrs(fd int) (attrs, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return attrs{}, err
	}
	return *t, nil
}

func applyRaw(fd int, saved attrs) error {
	raw := saved
	raw.Lflag &^= rawLflags
	return unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &raw)
}

func applyCooked(fd int, saved attrs) error {
	cooked := saved
	cooked.Lflag |= rawLflags
	return unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &cooked)
}
