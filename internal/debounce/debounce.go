// Package debounce coalesces bursts of trigger events into a single action
// fired after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds a single pending task slot. Scheduling a new task cancels
// any unfired pending one, so only the final invocation of a burst runs.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Schedule runs fn once the quiet period elapses without another Schedule
// call. fn executes on its own goroutine.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels the pending task, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
