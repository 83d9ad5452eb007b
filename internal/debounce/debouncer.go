package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer drives a Gate with real (or injected) timers and delivers
// committed values to a callback. Safe for concurrent use.
//
// The commit callback runs with the Debouncer's lock held, which is what
// guarantees nothing commits after Stop returns. It must not call back
// into the Debouncer.
type Debouncer struct {
	mu      sync.Mutex
	gate    *Gate
	clock   Clock
	delay   time.Duration
	timer   clockwork.Timer
	commit  func(string)
	stopped bool
}

// New creates a Debouncer. A non-positive delay uses DefaultDelay; a nil
// clock uses the wall clock.
func New(delay time.Duration, clock Clock, commit func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer{
		gate:   NewGate(),
		clock:  clock,
		delay:  delay,
		commit: commit,
	}
}

// Push records a raw value and restarts the idle window.
// The first value pushed is the session's initial value and never commits.
func (d *Debouncer) Push(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	t := d.gate.Change(v)
	if t == 0 {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(t) })
}

func (d *Debouncer) fire(t Ticket) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	v, ok := d.gate.Expire(t)
	if !ok {
		return
	}
	d.timer = nil
	if d.commit != nil {
		d.commit(v)
	}
}

// Flush commits the pending value now instead of waiting out the window.
// It does nothing when no value is pending or after Stop.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	t, ok := d.gate.Pending()
	if !ok {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	v, _ := d.gate.Expire(t)
	if d.commit != nil {
		d.commit(v)
	}
}

// Stop cancels any pending commit. After Stop returns no commit fires and
// further Push calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gate.Cancel()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
