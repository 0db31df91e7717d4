package render

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of redraw requests: at most one callback
// is pending at a time, and scheduling a new one cancels the prior.
// Used to avoid re-rasterizing the page for every pixel of a window
// resize.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer that fires delay after the most
// recent Schedule call.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the debounce delay, cancelling
// any previously scheduled callback.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
