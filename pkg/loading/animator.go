package loading

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/vimterm/internal/logging"
)

// DefaultInterval is the time between frames.
const DefaultInterval = 100 * time.Millisecond

var frames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Frames returns the spinner glyphs in display order.
func Frames() []string {
	return append([]string(nil), frames[:]...)
}

// Option configures an Animator.
type Option func(*options)

type options struct {
	interval time.Duration
}

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Animator cycles a spinner next to a base message on its own goroutine.
//
// Each tick composes "<message> <frame>" and publishes it three ways: it
// becomes the value of Message, it is offered on Updates, and it is passed to
// the onUpdate callback. The callback runs on the animator goroutine.
type Animator struct {
	onUpdate func(string)
	interval time.Duration

	base    atomic.Pointer[string]
	current atomic.Pointer[string]
	frame   atomic.Int32
	updates chan string

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewAnimator creates a stopped animator. onUpdate may be nil.
func NewAnimator(message string, onUpdate func(string), opts ...Option) *Animator {
	o := buildOptions(opts)
	a := &Animator{
		onUpdate: onUpdate,
		interval: o.interval,
		updates:  make(chan string, 1),
	}
	a.base.Store(&message)
	a.current.Store(&message)
	return a
}

// Start launches the animation. It does nothing if already running.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return
	}
	a.running = true
	a.stop = make(chan struct{})
	go a.run(a.stop)

	logging.Debug("Loading animation started",
		zap.String("message", a.BaseMessage()),
		zap.Duration("interval", a.interval),
	)
}

// Stop asks the animation to end and returns immediately. A publish already
// in progress may still complete after Stop returns.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false
	close(a.stop)

	logging.Debug("Loading animation stopped", zap.String("message", a.BaseMessage()))
}

// Running reports whether Start has been called without a matching Stop.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// BaseMessage returns the text shown before the spinner.
func (a *Animator) BaseMessage() string {
	return *a.base.Load()
}

// SetBaseMessage replaces the text shown before the spinner from the next
// frame on.
func (a *Animator) SetBaseMessage(message string) {
	a.base.Store(&message)
}

// Message returns the most recently published text, or the base message if
// nothing has been published yet.
func (a *Animator) Message() string {
	return *a.current.Load()
}

// Updates delivers published messages. The channel holds one value; a slow
// reader sees the newest message and misses the ones in between.
func (a *Animator) Updates() <-chan string {
	return a.updates
}

func (a *Animator) run(stop <-chan struct{}) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		default:
		}

		a.publish(a.compose())

		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		a.frame.Store((a.frame.Load() + 1) % int32(len(frames)))
	}
}

func (a *Animator) compose() string {
	return a.BaseMessage() + " " + frames[a.frame.Load()]
}

func (a *Animator) publish(msg string) {
	a.current.Store(&msg)

	// Replace whatever the reader has not picked up yet.
	select {
	case <-a.updates:
	default:
	}
	select {
	case a.updates <- msg:
	default:
	}

	if a.onUpdate != nil {
		a.onUpdate(msg)
	}
}

// Do runs op with the animation running. The animation stops when op
// returns or panics, and op's error is returned as is.
func (a *Animator) Do(ctx context.Context, op func(context.Context) error) error {
	a.Start()
	defer a.Stop()
	return op(ctx)
}

// Run is Do for operations that produce a value.
func Run[T any](ctx context.Context, a *Animator, op func(context.Context) (T, error)) (T, error) {
	a.Start()
	defer a.Stop()
	return op(ctx)
}
