// Package debounce delays raw text changes into committed values.
//
// Gate is the pure ticket bookkeeping: every change supersedes the previous
// one, and only the ticket of the most recent change can commit. Callers
// schedule expiry themselves (Bubble Tea's tea.Tick, or Debouncer's timer).
//
// The owner announces the value the session starts with by calling Change
// once; that first call is swallowed so the initial value never commits.
package debounce

import "time"

// DefaultDelay is the idle window before a value commits.
const DefaultDelay = 500 * time.Millisecond

// Ticket identifies one scheduled commit. The zero Ticket is never valid.
type Ticket uint64

// Gate tracks the latest pending value. Not safe for concurrent use.
type Gate struct {
	seq     Ticket
	value   string
	pending bool
	primed  bool
}

// NewGate returns a Gate that will swallow its first Change.
func NewGate() *Gate {
	return &Gate{}
}

// Change records a new raw value and returns the ticket that must expire
// for it to commit. Any earlier ticket is invalidated. Returns 0 for the
// initial value, which is not scheduled.
func (g *Gate) Change(v string) Ticket {
	if !g.primed {
		g.primed = true
		g.value = v
		return 0
	}
	g.seq++
	g.value = v
	g.pending = true
	return g.seq
}

// Expire is called when t's delay has elapsed. It returns the value to
// commit if t is still the latest ticket, consuming it.
func (g *Gate) Expire(t Ticket) (string, bool) {
	if t == 0 || !g.pending || t != g.seq {
		return "", false
	}
	g.pending = false
	return g.value, true
}

// Cancel drops any pending commit. Outstanding tickets never commit.
func (g *Gate) Cancel() {
	if g.pending {
		g.seq++
		g.pending = false
	}
}

// Pending returns the live ticket, if any.
func (g *Gate) Pending() (Ticket, bool) {
	return g.seq, g.pending
}
