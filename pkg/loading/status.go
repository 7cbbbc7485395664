package loading

import (
	"context"
	"sync"
	"sync/atomic"
)

// Status tracks whether the host is busy and what to show while it is.
//
// While loading, the message carries the spinner frame and onChange fires on
// every frame. onChange also fires on UpdateMessage and StopLoading. It may
// be called from the animator goroutine, so it must be safe for concurrent
// use with the caller's own drawing.
type Status struct {
	onChange func()
	opts     []Option

	loading atomic.Bool
	message atomic.Pointer[string]

	mu       sync.Mutex
	animator *Animator
	gen      uint64
}

// NewStatus creates an idle Status. opts are applied to every animator it
// starts. onChange may be nil.
func NewStatus(onChange func(), opts ...Option) *Status {
	s := &Status{onChange: onChange, opts: opts}
	empty := ""
	s.message.Store(&empty)
	return s
}

// StartLoading enters the loading state with message and starts the
// spinner. A spinner already running is replaced.
func (s *Status) StartLoading(message string) {
	s.mu.Lock()
	if s.animator != nil {
		s.animator.Stop()
	}
	s.gen++
	gen := s.gen
	s.loading.Store(true)
	s.message.Store(&message)
	s.animator = NewAnimator(message, func(frame string) {
		s.frame(gen, frame)
	}, s.opts...)
	s.animator.Start()
	s.mu.Unlock()
}

// frame drops ticks from an animator that has since been replaced or stopped.
func (s *Status) frame(gen uint64, msg string) {
	s.mu.Lock()
	current := gen == s.gen
	if current {
		s.message.Store(&msg)
	}
	s.mu.Unlock()

	if current {
		s.notify()
	}
}

// UpdateMessage replaces the message. While loading, the spinner keeps
// running next to the new text.
func (s *Status) UpdateMessage(message string) {
	s.mu.Lock()
	if s.animator != nil {
		s.animator.SetBaseMessage(message)
	}
	s.message.Store(&message)
	s.mu.Unlock()

	s.notify()
}

// StopLoading leaves the loading state. The last message is kept.
func (s *Status) StopLoading() {
	s.mu.Lock()
	if s.animator != nil {
		s.animator.Stop()
		s.animator = nil
	}
	s.gen++
	s.loading.Store(false)
	s.mu.Unlock()

	s.notify()
}

// Loading reports whether the status is in the loading state.
func (s *Status) Loading() bool {
	return s.loading.Load()
}

// Message returns the current message.
func (s *Status) Message() string {
	return *s.message.Load()
}

func (s *Status) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Do runs op in the loading state with message. Loading stops when op
// returns or panics, and op's error is returned as is.
func (s *Status) Do(ctx context.Context, message string, op func(context.Context) error) error {
	s.StartLoading(message)
	defer s.StopLoading()
	return op(ctx)
}

// WithLoading is Status.Do for operations that produce a value.
func WithLoading[T any](ctx context.Context, s *Status, message string, op func(context.Context) (T, error)) (T, error) {
	s.StartLoading(message)
	defer s.StopLoading()
	return op(ctx)
}
