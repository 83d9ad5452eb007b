package otel

import (
	"os"
	"sync/atomic"
)

var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(os.Getenv("BOOKFINDER_TRACE") != "")
}

// TraceEnabled reports whether per-message tracing is on (BOOKFINDER_TRACE).
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// setTraceEnabled is for tests.
func setTraceEnabled(v bool) {
	traceEnabled.Store(v)
}
