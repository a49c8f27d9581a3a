package ui

import "time"

// Debouncer runs fn once a burst of triggers has been quiet for the settle
// delay. It is polled from the frame loop rather than using timers, so fn
// always runs on the loop's goroutine.
type Debouncer struct {
	delay    time.Duration
	fn       func()
	deadline time.Time
	armed    bool
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger restarts the settle period.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Poll runs fn if the settle period has elapsed, and reports whether it did.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	if d.fn != nil {
		d.fn()
	}
	return true
}

func (d *Debouncer) Pending() bool { return d.armed }
