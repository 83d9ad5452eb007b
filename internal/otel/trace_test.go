package otel

import "testing"

func TestTraceEnabledToggle(t *testing.T) {
	orig := TraceEnabled()
	t.Cleanup(func() { setTraceEnabled(orig) })

	setTraceEnabled(true)
	if !TraceEnabled() {
		t.Error("expected trace enabled")
	}
	setTraceEnabled(false)
	if TraceEnabled() {
		t.Error("expected trace disabled")
	}
}
