package loading

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusStartsIdle(t *testing.T) {
	s := NewStatus(nil)

	require.False(t, s.Loading())
	require.Equal(t, "", s.Message())
}

func TestStatusAnimatesMessage(t *testing.T) {
	var changes atomic.Int32
	s := NewStatus(func() { changes.Add(1) }, WithInterval(testInterval))

	s.StartLoading("Test loading")
	require.True(t, s.Loading())

	require.Eventually(t, func() bool { return changes.Load() >= 2 }, 2*time.Second, testInterval)
	msg := s.Message()
	require.NotEqual(t, "Test loading", msg)
	require.True(t, strings.HasPrefix(msg, "Test loading "), "message %q", msg)

	s.StopLoading()
	require.False(t, s.Loading())
}

func TestStatusUpdateMessage(t *testing.T) {
	var changes atomic.Int32
	s := NewStatus(func() { changes.Add(1) }, WithInterval(time.Hour))

	s.StartLoading("Initial message")
	require.True(t, s.Loading())
	// Wait for the first frame so it cannot land after the update.
	require.Eventually(t, func() bool { return s.Message() != "Initial message" }, 2*time.Second, 5*time.Millisecond)

	before := changes.Load()
	s.UpdateMessage("Updated message")
	require.Equal(t, "Updated message", s.Message())
	require.Greater(t, changes.Load(), before)

	s.StopLoading()
	require.False(t, s.Loading())
	require.Equal(t, "Updated message", s.Message())
}

func TestStatusUpdateMessageKeepsSpinner(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))
	s.StartLoading("Reading")
	defer s.StopLoading()

	s.UpdateMessage("Sorting")
	require.Eventually(t, func() bool {
		return strings.HasPrefix(s.Message(), "Sorting ")
	}, 2*time.Second, testInterval)
}

func TestStatusStopNotifies(t *testing.T) {
	var changes atomic.Int32
	s := NewStatus(func() { changes.Add(1) }, WithInterval(time.Hour))

	s.StartLoading("Loading")
	before := changes.Load()
	s.StopLoading()
	require.Greater(t, changes.Load(), before)
}

func TestStatusQuietAfterStop(t *testing.T) {
	var changes atomic.Int32
	s := NewStatus(func() { changes.Add(1) }, WithInterval(testInterval))

	s.StartLoading("Loading")
	require.Eventually(t, func() bool { return changes.Load() >= 3 }, 2*time.Second, testInterval)
	s.StopLoading()
	time.Sleep(3 * testInterval)

	settled := changes.Load()
	final := s.Message()
	time.Sleep(10 * testInterval)
	require.Equal(t, settled, changes.Load(), "changes after StopLoading")
	require.Equal(t, final, s.Message())
}

func TestStatusRestartReplacesSpinner(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))

	s.StartLoading("First")
	s.StartLoading("Second")
	defer s.StopLoading()

	require.Eventually(t, func() bool {
		return strings.HasPrefix(s.Message(), "Second ")
	}, 2*time.Second, testInterval)

	// Frames from the first spinner must not come back.
	for i := 0; i < 5; i++ {
		time.Sleep(testInterval)
		require.False(t, strings.HasPrefix(s.Message(), "First"), "stale message %q", s.Message())
	}
}

func TestStatusDo(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))

	var loadingInside bool
	err := s.Do(context.Background(), "Test operation", func(context.Context) error {
		loadingInside = s.Loading()
		return nil
	})

	require.NoError(t, err)
	require.True(t, loadingInside)
	require.False(t, s.Loading())
}

func TestStatusDoReturnsError(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))
	boom := errors.New("boom")

	err := s.Do(context.Background(), "Failing", func(context.Context) error { return boom })

	require.ErrorIs(t, err, boom)
	require.False(t, s.Loading())
}

func TestStatusDoStopsOnPanic(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))

	require.Panics(t, func() {
		_ = s.Do(context.Background(), "Panicking", func(context.Context) error { panic("kaboom") })
	})
	require.False(t, s.Loading())
}

func TestWithLoading(t *testing.T) {
	s := NewStatus(nil, WithInterval(testInterval))

	got, err := WithLoading(context.Background(), s, "Fetching", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
	require.False(t, s.Loading())

	boom := errors.New("boom")
	_, err = WithLoading(context.Background(), s, "Fetching", func(context.Context) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, s.Loading())
}
