package loading

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testInterval = 10 * time.Millisecond

// recorder collects callback messages.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) add(msg string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func TestFrames(t *testing.T) {
	want := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	require.Equal(t, want, Frames())

	got := Frames()
	got[0] = "x"
	require.Equal(t, "⠋", Frames()[0], "Frames() must return a copy")
}

func TestNewAnimatorIsStopped(t *testing.T) {
	a := NewAnimator("Loading", nil)

	require.False(t, a.Running())
	require.Equal(t, "Loading", a.BaseMessage())
	require.Equal(t, "Loading", a.Message())
}

func TestAnimatorPublishesAtDefaultInterval(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Loading", rec.add)

	a.Start()
	defer a.Stop()

	require.Eventually(t, func() bool { return rec.len() >= 2 }, 300*time.Millisecond, 5*time.Millisecond)

	msgs := rec.snapshot()
	require.NotEqual(t, msgs[0], msgs[1])
	for _, m := range msgs {
		require.True(t, strings.HasPrefix(m, "Loading "), "message %q", m)
	}
}

func TestAnimatorCyclesFramesInOrder(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Working", rec.add, WithInterval(testInterval))

	a.Start()
	require.Eventually(t, func() bool { return rec.len() >= 12 }, 2*time.Second, testInterval)
	a.Stop()

	frames := Frames()
	for i, m := range rec.snapshot()[:12] {
		want := "Working " + frames[i%len(frames)]
		require.Equal(t, want, m, "message %d", i)
	}
}

func TestAnimatorStartIsIdempotent(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Loading", rec.add, WithInterval(testInterval))

	a.Start()
	a.Start()
	require.True(t, a.Running())
	require.Eventually(t, func() bool { return rec.len() >= 4 }, 2*time.Second, testInterval)
	a.Stop()

	// A second loop would publish each frame twice.
	msgs := rec.snapshot()
	for i := 1; i < len(msgs); i++ {
		require.NotEqual(t, msgs[i-1], msgs[i], "message %d repeated", i)
	}
}

func TestAnimatorStopQuiesces(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Loading", rec.add, WithInterval(testInterval))

	a.Start()
	require.Eventually(t, func() bool { return rec.len() >= 2 }, 2*time.Second, testInterval)
	a.Stop()
	require.False(t, a.Running())

	// Allow for the one publish that may race with Stop.
	time.Sleep(3 * testInterval)
	settled := rec.len()
	time.Sleep(10 * testInterval)
	require.Equal(t, settled, rec.len(), "callbacks after Stop")
}

func TestAnimatorStopWithoutStart(t *testing.T) {
	a := NewAnimator("Loading", nil)
	a.Stop()
	a.Stop()
	require.False(t, a.Running())
}

func TestAnimatorRestart(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Loading", rec.add, WithInterval(testInterval))

	a.Start()
	require.Eventually(t, func() bool { return rec.len() >= 2 }, 2*time.Second, testInterval)
	a.Stop()
	time.Sleep(3 * testInterval)
	before := rec.len()

	a.Start()
	defer a.Stop()
	require.Eventually(t, func() bool { return rec.len() > before }, 2*time.Second, testInterval)
}

func TestAnimatorUpdatesChannel(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))

	a.Start()
	defer a.Stop()

	select {
	case msg := <-a.Updates():
		require.True(t, strings.HasPrefix(msg, "Loading "), "update %q", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}

	require.Eventually(t, func() bool { return a.Message() != "Loading" }, 2*time.Second, testInterval)
}

func TestAnimatorUpdatesKeepsNewest(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator("Loading", rec.add, WithInterval(testInterval))

	a.Start()
	require.Eventually(t, func() bool { return rec.len() >= 5 }, 2*time.Second, testInterval)
	a.Stop()
	time.Sleep(3 * testInterval)

	msgs := rec.snapshot()
	select {
	case got := <-a.Updates():
		require.Equal(t, msgs[len(msgs)-1], got)
	default:
		t.Fatal("expected a buffered update")
	}
	require.Len(t, a.Updates(), 0)
}

func TestAnimatorSetBaseMessage(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))
	a.Start()
	defer a.Stop()

	a.SetBaseMessage("Almost done")
	require.Equal(t, "Almost done", a.BaseMessage())
	require.Eventually(t, func() bool {
		return strings.HasPrefix(a.Message(), "Almost done ")
	}, 2*time.Second, testInterval)
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	require.Equal(t, DefaultInterval, buildOptions([]Option{WithInterval(0)}).interval)
	require.Equal(t, DefaultInterval, buildOptions([]Option{WithInterval(-time.Second)}).interval)
	require.Equal(t, time.Second, buildOptions([]Option{WithInterval(time.Second)}).interval)
}

func TestAnimatorDo(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))

	var runningInside bool
	err := a.Do(context.Background(), func(context.Context) error {
		runningInside = a.Running()
		return nil
	})

	require.NoError(t, err)
	require.True(t, runningInside)
	require.False(t, a.Running())
}

func TestAnimatorDoReturnsError(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))
	boom := errors.New("boom")

	err := a.Do(context.Background(), func(context.Context) error { return boom })

	require.ErrorIs(t, err, boom)
	require.False(t, a.Running())
}

func TestAnimatorDoStopsOnPanic(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))

	require.PanicsWithValue(t, "kaboom", func() {
		_ = a.Do(context.Background(), func(context.Context) error { panic("kaboom") })
	})
	require.False(t, a.Running())
}

func TestAnimatorDoPassesContext(t *testing.T) {
	a := NewAnimator("Loading", nil, WithInterval(testInterval))
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	err := a.Do(ctx, func(got context.Context) error {
		require.Equal(t, "v", got.Value(key{}))
		return nil
	})
	require.NoError(t, err)
}

func TestRun(t *testing.T) {
	a := NewAnimator("Counting", nil, WithInterval(testInterval))

	n, err := Run(context.Background(), a, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, n)
	require.False(t, a.Running())

	boom := errors.New("boom")
	s, err := Run(context.Background(), a, func(context.Context) (string, error) {
		return "partial", boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, "partial", s)
	require.False(t, a.Running())
}
