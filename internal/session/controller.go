// Package session owns the search session state machine.
//
// A Controller turns committed input into search attempts and decides which
// responses may update visible state. It has no timers, goroutines or I/O:
// callers run the attempts it hands out and report back with Complete.
// Only the attempt with the current epoch may touch results or the loading
// flag, whatever order responses arrive in.
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/otel"
	"github.com/abelbrown/bookfinder/internal/query"
	"github.com/abelbrown/bookfinder/internal/search"
)

var errNoResponse = errors.New("search returned no response")

// DefaultQuery seeds the initial "Recommended for You" view.
const DefaultQuery = "stories"

// Attempt is one search the caller must run.
type Attempt struct {
	Epoch     uint64
	Query     query.Query
	TopK      int
	Bootstrap bool
}

// Request is the wire form of the attempt.
func (a Attempt) Request() search.Request {
	return search.NewRequest(a.Query, a.TopK)
}

// Outcome is the result of running an Attempt.
type Outcome struct {
	Epoch    uint64
	Response *book.SearchResponse
	Err      error
	Dur      time.Duration
}

// Resolution says what Complete did with an Outcome.
type Resolution int

const (
	Applied Resolution = iota // results replaced
	Failed                    // results kept, loading cleared
	Stale                     // superseded, nothing touched
)

func (r Resolution) String() string {
	switch r {
	case Applied:
		return "applied"
	case Failed:
		return "failed"
	case Stale:
		return "stale"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// State is a snapshot for rendering. Results is owned by the caller.
type State struct {
	Intent    query.Intent
	LastQuery string // committed text as typed, for the results header
	Loading   bool
	Results   []book.Book
	Epoch     uint64
}

// Controller is the session state machine. It is not safe for concurrent
// use; one goroutine (the Bubble Tea loop or a Runner) owns it.
type Controller struct {
	topK      int
	log       *otel.Logger
	intent    query.Intent
	lastQuery string
	loading   bool
	results   []book.Book
	epoch     uint64
}

// NewController returns an idle controller. topK <= 0 means
// search.DefaultTopK. log may be nil.
func NewController(topK int, log *otel.Logger) *Controller {
	if topK <= 0 {
		topK = search.DefaultTopK
	}
	return &Controller{topK: topK, log: log}
}

// Bootstrap starts the initial search for DefaultQuery with no mood.
// It bypasses the composer: the default intent is empty and would
// otherwise not be effective.
func (c *Controller) Bootstrap() Attempt {
	c.epoch++
	c.loading = true
	a := Attempt{
		Epoch:     c.epoch,
		Query:     query.Query{Text: DefaultQuery},
		TopK:      c.topK,
		Bootstrap: true,
	}
	c.emitStart(a)
	return a
}

// SubmitText records committed text and starts an attempt with the current
// mood. ok is false when the intent is not effective; results were cleared
// and there is nothing to run.
func (c *Controller) SubmitText(text string) (a Attempt, ok bool) {
	c.intent.Text = text
	c.lastQuery = text
	return c.attempt()
}

// SubmitMood records m and starts an attempt with the existing committed
// text.
func (c *Controller) SubmitMood(m mood.Mood) (a Attempt, ok bool) {
	c.intent.Mood = m
	return c.attempt()
}

func (c *Controller) attempt() (Attempt, bool) {
	c.epoch++
	q, ok := query.Compose(c.intent)
	if !ok {
		c.results = nil
		c.loading = false
		c.log.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindSearchSkip,
			Comp:  "session",
			Epoch: c.epoch,
		})
		return Attempt{}, false
	}
	c.loading = true
	a := Attempt{Epoch: c.epoch, Query: q, TopK: c.topK}
	c.emitStart(a)
	return a, true
}

// Complete applies o if it belongs to the current attempt.
func (c *Controller) Complete(o Outcome) Resolution {
	if o.Epoch != c.epoch {
		c.log.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindSearchStale,
			Comp:  "session",
			Epoch: o.Epoch,
			Dur:   o.Dur,
			Msg:   fmt.Sprintf("current epoch %d", c.epoch),
		})
		return Stale
	}

	c.loading = false
	if o.Err != nil || o.Response == nil {
		err := o.Err
		if err == nil {
			err = errNoResponse
		}
		c.log.Emit(otel.Event{
			Level: otel.LevelError,
			Kind:  otel.KindSearchError,
			Comp:  "session",
			Epoch: o.Epoch,
			Dur:   o.Dur,
			Err:   err.Error(),
		})
		return Failed
	}

	c.results = book.Normalize(o.Response.Results)
	c.log.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindSearchComplete,
		Comp:  "session",
		Epoch: o.Epoch,
		Count: len(c.results),
		Dur:   o.Dur,
		Extra: map[string]any{"total": o.Response.Total, "query_time": o.Response.QueryTime},
	})
	return Applied
}

// Epoch is the current attempt number.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// State returns a snapshot.
func (c *Controller) State() State {
	return State{
		Intent:    c.intent,
		LastQuery: c.lastQuery,
		Loading:   c.loading,
		Results:   slices.Clone(c.results),
		Epoch:     c.epoch,
	}
}

func (c *Controller) emitStart(a Attempt) {
	c.log.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindSearchStart,
		Comp:  "session",
		Epoch: a.Epoch,
		Query: a.Query.Text,
		Mood:  string(a.Query.Mood),
	})
}
