package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects committed values.
type recorder struct {
	mu   sync.Mutex
	vals []string
}

func (r *recorder) commit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = append(r.vals, v)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.vals))
	copy(out, r.vals)
	return out
}

func TestGateSwallowsInitialValue(t *testing.T) {
	g := NewGate()
	assert.Equal(t, Ticket(0), g.Change(""))
	_, pending := g.Pending()
	assert.False(t, pending)

	tk := g.Change("a")
	require.NotZero(t, tk)
	v, ok := g.Expire(tk)
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestGateLatestTicketWins(t *testing.T) {
	g := NewGate()
	g.Change("")

	t1 := g.Change("d")
	t2 := g.Change("dr")
	t3 := g.Change("dragons")

	_, ok := g.Expire(t1)
	assert.False(t, ok)
	_, ok = g.Expire(t2)
	assert.False(t, ok)

	v, ok := g.Expire(t3)
	require.True(t, ok)
	assert.Equal(t, "dragons", v)

	// A ticket commits at most once.
	_, ok = g.Expire(t3)
	assert.False(t, ok)
}

func TestGateCancel(t *testing.T) {
	g := NewGate()
	g.Change("")
	tk := g.Change("x")
	g.Cancel()
	_, ok := g.Expire(tk)
	assert.False(t, ok)
	_, ok = g.Expire(0)
	assert.False(t, ok)
}

// waitCommits waits for the recorder to hold n values. Fake clock
// callbacks may run on their own goroutine.
func waitCommits(t *testing.T, rec *recorder, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(rec.values()) >= n }, 2*time.Second, time.Millisecond)
}

func TestDebouncerRapidChangesCommitOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	d := New(500*time.Millisecond, clock, rec.commit)

	d.Push("") // session start
	d.Push("dragons")
	clock.Advance(200 * time.Millisecond)
	d.Push("dragons and magic")
	clock.Advance(499 * time.Millisecond)
	assert.Empty(t, rec.values(), "nothing commits inside the idle window")

	clock.Advance(1 * time.Millisecond)
	waitCommits(t, rec, 1)
	assert.Equal(t, []string{"dragons and magic"}, rec.values())

	clock.Advance(10 * time.Second)
	assert.Equal(t, []string{"dragons and magic"}, rec.values())
}

func TestDebouncerInitialValueNeverCommits(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	d := New(500*time.Millisecond, clock, rec.commit)

	d.Push("seed")
	assert.Nil(t, d.timer, "no window opens for the initial value")
	clock.Advance(time.Second)
	assert.Empty(t, rec.values())

	// Only one value is suppressed.
	d.Push("seed")
	clock.Advance(time.Second)
	waitCommits(t, rec, 1)
	assert.Equal(t, []string{"seed"}, rec.values())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	d := New(500*time.Millisecond, clock, rec.commit)

	d.Push("")
	d.Push("dragons")
	clock.Advance(100 * time.Millisecond)
	d.Stop()
	clock.Advance(time.Second)
	assert.Empty(t, rec.values())

	d.Push("after stop")
	clock.Advance(time.Second)
	assert.Empty(t, rec.values())
}

func TestDebouncerFlush(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	d := New(500*time.Millisecond, clock, rec.commit)

	d.Push("")
	d.Flush()
	assert.Empty(t, rec.values(), "the initial value is never pending")

	d.Push("dragons")
	d.Flush()
	assert.Equal(t, []string{"dragons"}, rec.values())

	clock.Advance(time.Second)
	assert.Equal(t, []string{"dragons"}, rec.values(), "the flushed window does not fire again")

	d.Push("magic")
	d.Stop()
	d.Flush()
	assert.Equal(t, []string{"dragons"}, rec.values())
}

func TestDebouncerSeparateWindowsCommitSeparately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	d := New(500*time.Millisecond, clock, rec.commit)

	d.Push("")
	d.Push("a")
	clock.Advance(600 * time.Millisecond)
	waitCommits(t, rec, 1)
	d.Push("ab")
	clock.Advance(600 * time.Millisecond)
	waitCommits(t, rec, 2)
	assert.Equal(t, []string{"a", "ab"}, rec.values())
}

func TestDebouncerDefaults(t *testing.T) {
	d := New(0, nil, nil)
	assert.Equal(t, DefaultDelay, d.delay)
	assert.NotNil(t, d.clock)
	d.Stop()
}

func TestDebouncerRealClock(t *testing.T) {
	done := make(chan string, 1)
	d := New(20*time.Millisecond, nil, func(v string) { done <- v })
	defer d.Stop()

	d.Push("")
	d.Push("x")
	d.Push("xy")

	select {
	case v := <-done:
		assert.Equal(t, "xy", v)
	case <-time.After(2 * time.Second):
		t.Fatal("commit never fired")
	}
}
