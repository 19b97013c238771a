package searchutil

import (
	"sync"
	"time"
)

// Debouncer delays calls to fn until wait has passed without another call.
// Only the arguments of the last call are delivered.
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	args    T
	// gen invalidates timers that fired while a newer call replaced them.
	gen uint64
}

// NewDebouncer returns a Debouncer for fn.
func NewDebouncer[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

// Call cancels any pending invocation and schedules fn(args) after wait.
func (d *Debouncer[T]) Call(args T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.args = args
	d.pending = true
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	args := d.args
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(args)
}

// Cancel drops the pending invocation, if any. It reports whether one was dropped.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.gen++
	return true
}

// Flush runs the pending invocation now, on the caller's goroutine.
// It reports whether there was anything to run.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	args := d.args
	d.pending = false
	d.gen++
	d.mu.Unlock()

	d.fn(args)
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Debounce returns a wrapper that runs fn wait after the last call, with the
// last call's arguments. Calling the wrapper again cancels the previous call.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	return NewDebouncer(fn, wait).Call
}
