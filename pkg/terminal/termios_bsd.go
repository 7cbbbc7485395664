//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)
