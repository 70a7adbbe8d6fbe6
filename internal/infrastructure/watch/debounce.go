// Package watch re-runs synchronization when the spec document or the
// source tree changes on disk.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one callback, fired after
// the window elapses without a further trigger.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a debouncer over the given window.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger arms (or re-arms) the window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fn)
		return
	}
	d.timer.Reset(d.window)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
