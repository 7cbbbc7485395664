package terminal

import (
	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/logging"
)

// SetLogger sends the diagnostics of the terminal, input and loading
// packages to l. They are silent until a logger is set. Nil silences them
// again.
func SetLogger(l *zap.Logger) {
	logging.SetLogger(l)
}
