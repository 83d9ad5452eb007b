package otel

import (
	"sync"
	"testing"
)

func TestPushAndSnapshot(t *testing.T) {
	r := NewRingBuffer(8)
	for i := 0; i < 3; i++ {
		r.Push(Event{Kind: KindSearchStart, Count: i})
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3, got %d", len(snap))
	}
	for i, e := range snap {
		if e.Count != i {
			t.Errorf("snap[%d].Count=%d, want %d", i, e.Count, i)
		}
	}
}

func TestWrapAround(t *testing.T) {
	r := NewRingBuffer(4)
	for i := 0; i < 6; i++ {
		r.Push(Event{Kind: KindSearchStart, Count: i})
	}
	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("expected 4, got %d", len(snap))
	}
	for i, e := range snap {
		if e.Count != i+2 {
			t.Errorf("snap[%d].Count=%d, want %d", i, e.Count, i+2)
		}
	}
}

func TestLastWrapped(t *testing.T) {
	r := NewRingBuffer(4)
	for i := 0; i < 6; i++ {
		r.Push(Event{Kind: KindSearchStart, Count: i})
	}
	last2 := r.Last(2)
	if len(last2) != 2 {
		t.Fatalf("expected 2, got %d", len(last2))
	}
	if last2[0].Count != 4 || last2[1].Count != 5 {
		t.Errorf("expected [4,5], got [%d,%d]", last2[0].Count, last2[1].Count)
	}
	if got := r.Last(100); len(got) != 4 {
		t.Errorf("Last(100) returned %d events, want 4", len(got))
	}
}

func TestLastNegative(t *testing.T) {
	r := NewRingBuffer(8)
	r.Push(Event{Kind: KindStartup})
	if got := r.Last(-1); got != nil {
		t.Errorf("Last(-1) = %v, want nil", got)
	}
	if got := r.Last(0); got != nil {
		t.Errorf("Last(0) = %v, want nil", got)
	}
}

func TestStatsSurviveEviction(t *testing.T) {
	r := NewRingBuffer(2)
	r.Push(Event{Kind: KindSearchStart})
	r.Push(Event{Kind: KindSearchStart})
	r.Push(Event{Kind: KindSearchComplete})
	r.Push(Event{Kind: KindSearchStale})

	stats := r.Stats()
	if stats[KindSearchStart] != 2 {
		t.Errorf("search.start=%d, want 2", stats[KindSearchStart])
	}
	if stats[KindSearchComplete] != 1 {
		t.Errorf("search.complete=%d, want 1", stats[KindSearchComplete])
	}
	if stats[KindSearchStale] != 1 {
		t.Errorf("search.stale=%d, want 1", stats[KindSearchStale])
	}
	if r.Len() != 2 {
		t.Errorf("Len()=%d, want 2", r.Len())
	}
}

func TestEmptySnapshot(t *testing.T) {
	r := NewRingBuffer(8)
	if snap := r.Snapshot(); snap != nil {
		t.Errorf("expected nil, got %v", snap)
	}
}

func TestCap(t *testing.T) {
	if c := NewRingBuffer(64).Cap(); c != 64 {
		t.Errorf("Cap() = %d, want 64", c)
	}
	if c := NewRingBuffer(0).Cap(); c != DefaultRingSize {
		t.Errorf("Cap() = %d, want %d", c, DefaultRingSize)
	}
}

func TestDeepCopyExtra(t *testing.T) {
	r := NewRingBuffer(4)
	extra := map[string]any{"status": 500}
	r.Push(Event{Kind: KindSearchError, Extra: extra})
	extra["status"] = 200

	if got := r.Snapshot()[0].Extra["status"]; got != 500 {
		t.Errorf("extra was aliased: got %v", got)
	}
}

func TestConcurrentPushSnapshot(t *testing.T) {
	r := NewRingBuffer(256)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Push(Event{Kind: KindSearchStart})
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Snapshot()
				_ = r.Last(10)
				_ = r.Stats()
			}
		}()
	}
	wg.Wait()

	if n := r.Stats()[KindSearchStart]; n != 1000 {
		t.Errorf("search.start=%d, want 1000", n)
	}
}

func TestRingBufferWithLogger(t *testing.T) {
	r := NewRingBuffer(16)
	l := NewNullLogger()
	l.SetRingBuffer(r)

	l.Emit(Event{Kind: KindStartup, Msg: "hello"})
	l.Emit(Event{Kind: KindShutdown, Msg: "bye"})
	l.Close()

	last := r.Last(2)
	if len(last) != 2 {
		t.Fatalf("expected 2 events in ring buffer, got %d", len(last))
	}
	if last[0].Kind != KindStartup || last[1].Kind != KindShutdown {
		t.Errorf("unexpected order: %v, %v", last[0].Kind, last[1].Kind)
	}
}
