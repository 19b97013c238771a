package searchutil

import (
	"sync"
	"time"
)

// Throttler runs fn at most once per limit. The first call in a window runs
// immediately; the rest of the window's calls are dropped, not queued.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	now   func() time.Time

	mu      sync.Mutex
	last    time.Time
	started bool
}

// NewThrottler returns a Throttler for fn.
func NewThrottler[T any](fn func(T), limit time.Duration) *Throttler[T] {
	return &Throttler[T]{fn: fn, limit: limit, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (t *Throttler[T]) WithClock(now func() time.Time) *Throttler[T] {
	t.now = now
	return t
}

// Call runs fn(args) if the throttle window is open and reports whether it ran.
func (t *Throttler[T]) Call(args T) bool {
	t.mu.Lock()
	now := t.now()
	if t.started && now.Sub(t.last) < t.limit {
		t.mu.Unlock()
		return false
	}
	t.started = true
	t.last = now
	t.mu.Unlock()

	t.fn(args)
	return true
}

// Throttle returns a wrapper that runs fn on the leading edge of each limit
// window and drops every other call in that window.
func Throttle[T any](fn func(T), limit time.Duration) func(T) {
	th := NewThrottler(fn, limit)
	return func(args T) { th.Call(args) }
}
