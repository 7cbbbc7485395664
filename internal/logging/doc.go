// Package logging provides structured logging for vimterm.
//
// This package wraps a zap logger with convenience functions for the few
// places the toolkit has something worth recording: terminal mode
// transitions, undecodable input bytes, and loading operations.
//
// # Log Levels
//
//   - Debug: raw input dumps, raw mode enter/exit, animator start/stop
//   - Info: directory loads and other application events
//   - Warn: terminal attribute calls that failed and were ignored
//   - Error: operations that failed inside a loading indicator
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// VIMTERM_LOG_LEVEL:
//
//	if err := logging.Initialize("debug", "/tmp/vimterm.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Full-screen programs own stdout, so log output should be sent to a file.
// Without a path, entries go to stderr.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The loading animator
// logs from its own goroutine.
package logging
