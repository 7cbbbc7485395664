// Package terminal controls the terminal line discipline and emits the
// ANSI/VT100 control sequences used by full-screen keyboard interfaces.
//
// Raw mode here means non-canonical, non-echoing input: single bytes are
// delivered as soon as they are typed. Signal generation and output
// post-processing are left alone, so Ctrl+C still interrupts the process and
// "\n" still moves to the start of the next line.
//
// Entering raw mode returns a *RawMode handle. The handle holds the captured
// attributes and is the only way back to cooked mode:
//
//	t := terminal.Std()
//	raw := t.EnableRawMode()
//	defer raw.Restore()
//
//	stop := terminal.RestoreOnSignal(raw, func(os.Signal) { os.Exit(130) })
//	defer stop()
//
// Failures of the underlying attribute calls are logged and otherwise
// ignored; an interactive loop keeps running on a terminal that could not be
// switched. Logging is off until a host passes a *zap.Logger to SetLogger,
// which also covers the input and loading packages.
package terminal
