package terminal

import "golang.org/x/sys/unix"

// TCSETSF applies the new settings after draining output and discarding
// unread input, the TCSAFLUSH behaviour.
const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
