package terminal

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/logging"
)

// RawMode is the handle for one raw mode session. It is returned by
// EnableRawMode and must be restored before the process exits.
type RawMode struct {
	t *Terminal

	saved    attrs
	captured bool
	active   atomic.Bool

	once sync.Once
}

// EnableRawMode captures the current terminal attributes, turns off
// canonical input and echo, applies the change with pending input flushed,
// and hides the cursor.
//
// Attribute failures are logged and ignored: the returned handle is always
// usable and Restore is always safe to call. Active reports whether the
// terminal actually switched. Calling EnableRawMode again re-captures and
// re-applies the same flags.
func (t *Terminal) EnableRawMode() *RawMode {
	r := &RawMode{t: t}

	saved, err := captureAttrs(t.fd)
	if err != nil {
		logging.Warn("Failed to read terminal attributes",
			zap.Int("fd", t.fd),
			zap.Error(err),
		)
	} else {
		r.saved = saved
		r.captured = true
		if err := applyRaw(t.fd, saved); err != nil {
			logging.Warn("Failed to enable raw mode",
				zap.Int("fd", t.fd),
				zap.Error(err),
			)
		} else {
			r.active.Store(true)
			logging.LogTerminal("raw_enabled", zap.Int("fd", t.fd))
		}
	}

	_ = t.WriteString(HideCursor)
	return r
}

// Active reports whether raw attributes were applied.
func (r *RawMode) Active() bool {
	return r.active.Load()
}

// Restore turns canonical input and echo back on and shows the cursor.
// Only the first call has any effect.
func (r *RawMode) Restore() {
	r.once.Do(r.restore)
}

func (r *RawMode) restore() {
	fd := r.t.fd
	saved := r.saved
	if !r.captured {
		var err error
		if saved, err = captureAttrs(fd); err != nil {
			logging.Warn("Failed to read terminal attributes", zap.Int("fd", fd), zap.Error(err))
			_ = r.t.WriteString(ShowCursor)
			return
		}
	}

	if err := applyCooked(fd, saved); err != nil {
		logging.Warn("Failed to restore terminal mode", zap.Int("fd", fd), zap.Error(err))
	} else {
		logging.LogTerminal("raw_restored", zap.Int("fd", fd))
	}
	r.active.Store(false)
	_ = r.t.WriteString(ShowCursor)
}
