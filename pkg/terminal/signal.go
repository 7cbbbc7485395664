package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/logging"
)

// RestoreOnSignal restores raw when the process receives SIGINT, SIGTERM or
// SIGHUP, then calls onSignal (which may be nil). Without it an interrupted
// session would leave the shell without echo.
//
// The returned stop function unregisters the handler; call it once the
// session has been restored normally.
func RestoreOnSignal(raw *RawMode, onSignal func(os.Signal)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			raw.Restore()
			logging.LogTerminal("restored_on_signal", zap.String("signal", sig.String()))
			if onSignal != nil {
				onSignal(sig)
			}
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
