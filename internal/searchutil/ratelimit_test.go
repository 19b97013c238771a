package searchutil

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callRecorder struct {
	mu    sync.Mutex
	calls []string
	at    []time.Time
}

func (r *callRecorder) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)
	r.at = append(r.at, time.Now())
}

func (r *callRecorder) snapshot() ([]string, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...), append([]time.Time(nil), r.at...)
}

func TestDebounce_BurstRunsOnceWithLastArgs(t *testing.T) {
	rec := &callRecorder{}
	wait := 30 * time.Millisecond
	debounced := Debounce(rec.record, wait)

	for _, q := range []string{"l", "la", "las", "lase", "laser"} {
		debounced(q)
	}
	lastCall := time.Now()

	require.Eventually(t, func() bool {
		calls, _ := rec.snapshot()
		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	// Give any stray timers a chance to fire.
	time.Sleep(3 * wait)
	calls, at := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "laser", calls[0])
	assert.GreaterOrEqual(t, at[0].Sub(lastCall), wait-5*time.Millisecond)
}

func TestDebounce_SeparateBurstsRunSeparately(t *testing.T) {
	rec := &callRecorder{}
	wait := 10 * time.Millisecond
	debounced := Debounce(rec.record, wait)

	debounced("a")
	require.Eventually(t, func() bool {
		calls, _ := rec.snapshot()
		return len(calls) == 1
	}, time.Second, time.Millisecond)

	debounced("b")
	require.Eventually(t, func() bool {
		calls, _ := rec.snapshot()
		return len(calls) == 2
	}, time.Second, time.Millisecond)

	calls, _ := rec.snapshot()
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestDebouncer_CancelAndFlush(t *testing.T) {
	t.Run("cancel drops the pending call", func(t *testing.T) {
		var count atomic.Int32
		d := NewDebouncer(func(int) { count.Add(1) }, 20*time.Millisecond)

		assert.False(t, d.Cancel())
		d.Call(1)
		assert.True(t, d.Pending())
		assert.True(t, d.Cancel())
		assert.False(t, d.Pending())

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, int32(0), count.Load())
	})

	t.Run("flush runs the pending call immediately", func(t *testing.T) {
		rec := &callRecorder{}
		d := NewDebouncer(rec.record, time.Hour)

		assert.False(t, d.Flush())
		d.Call("first")
		d.Call("second")
		assert.True(t, d.Flush())
		assert.False(t, d.Pending())

		calls, _ := rec.snapshot()
		assert.Equal(t, []string{"second"}, calls)
		assert.False(t, d.Flush())
	})
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestThrottler_LeadingEdgeDropsRest(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	rec := &callRecorder{}
	th := NewThrottler(rec.record, 100*time.Millisecond).WithClock(clock.Now)

	assert.True(t, th.Call("first"))
	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Millisecond)
		assert.False(t, th.Call("dropped"))
	}

	calls, _ := rec.snapshot()
	assert.Equal(t, []string{"first"}, calls)

	clock.Advance(60 * time.Millisecond) // 110ms after the first call
	assert.True(t, th.Call("second"))

	calls, _ = rec.snapshot()
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestThrottler_NoTrailingReplay(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	var count atomic.Int32
	th := NewThrottler(func(struct{}) { count.Add(1) }, 50*time.Millisecond).WithClock(clock.Now)

	th.Call(struct{}{})
	th.Call(struct{}{})
	th.Call(struct{}{})
	clock.Advance(time.Second)

	assert.Equal(t, int32(1), count.Load())
}

func TestThrottle_Wrapper(t *testing.T) {
	var count atomic.Int32
	throttled := Throttle(func(int) { count.Add(1) }, time.Hour)
	for i := 0; i < 10; i++ {
		throttled(i)
	}
	assert.Equal(t, int32(1), count.Load())
}
