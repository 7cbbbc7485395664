// Package loading draws a text spinner while the host waits on slow work.
//
// An Animator ticks through a fixed set of braille frames on its own
// goroutine and publishes "<message> <frame>" on every tick. The host either
// polls Message, reads Updates, or passes a callback.
//
// Status sits on top of an Animator and keeps a loading flag and message that
// a render loop can read at any time:
//
//	status := loading.NewStatus(redraw)
//	err := status.Do(ctx, "Loading directory...", func(ctx context.Context) error {
//		return load(ctx)
//	})
//
// Stop never waits for the animator goroutine. One frame already being
// published when Stop is called may still reach the callback.
//
// Start and Stop are logged at debug level through the logger given to
// terminal.SetLogger.
package loading
