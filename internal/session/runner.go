package session

import (
	"context"
	"sync"
	"time"

	"github.com/abelbrown/bookfinder/internal/debounce"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/otel"
	"github.com/abelbrown/bookfinder/internal/search"
)

// Options configures a Runner.
type Options struct {
	TopK  int
	Delay time.Duration  // debounce window, DefaultDelay if zero
	Clock debounce.Clock // wall clock if nil
	Log   *otel.Logger

	// OnChange receives a snapshot after every state change. It runs on the
	// Runner's goroutine and must not call back into the Runner.
	OnChange func(State)
}

// Runner drives a Controller without a UI. One goroutine owns the
// Controller; typed text goes through a debounce.Debouncer, searches run in
// their own goroutines and report back to the owner.
type Runner struct {
	ctrl     *Controller
	searcher search.Searcher
	deb      *debounce.Debouncer
	log      *otel.Logger
	onChange func(State)

	ctx    context.Context
	cancel context.CancelFunc

	events chan func()
	quit   chan struct{}
	done   chan struct{}

	// owned by the loop goroutine
	closed   bool
	inflight int
	waiters  []chan State

	searches  sync.WaitGroup
	final     State
	closeOnce sync.Once
}

// NewRunner starts a Runner. The session's initial empty text is pushed
// through the debouncer so it never commits; call Start to run the
// bootstrap search.
func NewRunner(s search.Searcher, opts Options) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		ctrl:     NewController(opts.TopK, opts.Log),
		searcher: s,
		log:      opts.Log,
		onChange: opts.OnChange,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan func()),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	r.deb = debounce.New(opts.Delay, opts.Clock, r.commit)
	r.deb.Push("")

	go r.loop()
	return r
}

func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case fn := <-r.events:
			fn()
		case <-r.quit:
			r.final = r.ctrl.State()
			for _, w := range r.waiters {
				w <- r.final
			}
			r.waiters = nil
			return
		}
	}
}

// post hands fn to the loop. It reports false once the loop has exited.
func (r *Runner) post(fn func()) bool {
	select {
	case r.events <- fn:
		return true
	case <-r.done:
		return false
	}
}

// Start runs the bootstrap search.
func (r *Runner) Start() {
	r.post(func() {
		if r.closed {
			return
		}
		r.launch(r.ctrl.Bootstrap())
		r.changed()
	})
}

// TypeText feeds one raw text value (the whole box, not a keystroke) into
// the debouncer.
func (r *Runner) TypeText(v string) {
	r.deb.Push(v)
}

// Flush commits any text still waiting in the debouncer.
func (r *Runner) Flush() {
	r.deb.Flush()
}

// SubmitText commits text immediately, bypassing the debouncer.
func (r *Runner) SubmitText(v string) {
	r.post(func() { r.submitText(v) })
}

// SelectMood changes the mood filter and searches with the committed text.
func (r *Runner) SelectMood(m mood.Mood) {
	r.post(func() {
		if r.closed {
			return
		}
		r.log.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindMoodSelect, Comp: "session", Mood: string(m)})
		if a, ok := r.ctrl.SubmitMood(m); ok {
			r.launch(a)
		}
		r.changed()
	})
}

// commit is the debouncer callback.
func (r *Runner) commit(v string) {
	r.post(func() {
		r.log.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindDebounceCommit, Comp: "session", Query: v})
		r.submitText(v)
	})
}

func (r *Runner) submitText(v string) {
	if r.closed {
		return
	}
	if a, ok := r.ctrl.SubmitText(v); ok {
		r.launch(a)
	}
	r.changed()
}

// launch runs a in its own goroutine. Loop only.
func (r *Runner) launch(a Attempt) {
	r.inflight++
	r.searches.Add(1)
	go func() {
		defer r.searches.Done()
		start := time.Now()
		resp, err := r.searcher.Search(r.ctx, a.Request())
		o := Outcome{Epoch: a.Epoch, Response: resp, Err: err, Dur: time.Since(start)}
		r.post(func() { r.complete(o) })
	}()
}

func (r *Runner) complete(o Outcome) {
	r.inflight--
	if !r.closed {
		if res := r.ctrl.Complete(o); res != Stale {
			r.changed()
		}
	}
	if r.inflight == 0 && len(r.waiters) > 0 {
		st := r.ctrl.State()
		for _, w := range r.waiters {
			w <- st
		}
		r.waiters = nil
	}
}

func (r *Runner) changed() {
	if r.onChange != nil {
		r.onChange(r.ctrl.State())
	}
}

// Snapshot returns the current state.
func (r *Runner) Snapshot() State {
	ch := make(chan State, 1)
	if !r.post(func() { ch <- r.ctrl.State() }) {
		return r.final
	}
	return <-ch
}

// Settle waits until every search started so far has completed and returns
// the resulting state. Pending debounce windows are not waited for.
func (r *Runner) Settle() State {
	ch := make(chan State, 1)
	ok := r.post(func() {
		if r.inflight == 0 {
			ch <- r.ctrl.State()
			return
		}
		r.waiters = append(r.waiters, ch)
	})
	if !ok {
		return r.final
	}
	return <-ch
}

// Close cancels any pending commit and in-flight searches and stops the
// Runner. Responses arriving after Close are dropped.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.deb.Stop()
		r.post(func() { r.closed = true })
		r.cancel()
		r.searches.Wait()
		close(r.quit)
		<-r.done
	})
}
