// Package otel is BookFinder's diagnostic channel.
//
// Events are typed records written as JSONL by an asynchronous Logger. An
// optional RingBuffer keeps the most recent events in memory for the debug
// overlay. Search failures surface here and nowhere else: the UI never
// shows a blocking error for a failed search.
package otel

import (
	"encoding/json"
	"time"
)

// Level is event severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind is "<subsystem>.<action>".
type EventKind string

const (
	// Search attempts, keyed by epoch
	KindSearchStart    EventKind = "search.start"
	KindSearchComplete EventKind = "search.complete"
	KindSearchError    EventKind = "search.error"
	KindSearchStale    EventKind = "search.stale"
	KindSearchSkip     EventKind = "search.skip"

	// Input
	KindDebounceCommit EventKind = "debounce.commit"
	KindMoodSelect     EventKind = "input.mood"

	// System
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
	KindError    EventKind = "sys.error"

	// Only emitted when BOOKFINDER_TRACE is set
	KindMsgReceived EventKind = "trace.msg_received"
)

// Event is one diagnostic record. Only Kind is required.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"` // "ui", "session", "stub", "main"
	SessionID string         `json:"session_id,omitempty"`
	Epoch     uint64         `json:"epoch,omitempty"`
	Query     string         `json:"query,omitempty"`
	Mood      string         `json:"mood,omitempty"`
	Count     int            `json:"count,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON writes Dur as dur_ms.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	a := alias(e)
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}
