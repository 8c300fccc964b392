package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is used when no positive window is given.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer runs the most recently triggered callback once the trigger
// calls have been quiet for the window. Editors write a config file in
// several steps; one reload per save is enough.
type Debouncer struct {
	wait time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fn    func()
	seq   uint64
}

// NewDebouncer returns a Debouncer with the given quiet window.
func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounceDuration
	}
	return &Debouncer{wait: wait}
}

// Trigger replaces the pending callback with fn and restarts the window.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fn = fn
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() { d.fire(seq) })
}

// fire runs the callback unless a later Trigger or Cancel superseded it.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.fn == nil {
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.fn = nil
	d.mu.Unlock()
	fn()
}

// Cancel drops the pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	d.fn = nil
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Pending reports whether a callback is waiting for the window to close.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}

// Duration is the quiet window.
func (d *Debouncer) Duration() time.Duration { return d.wait }
