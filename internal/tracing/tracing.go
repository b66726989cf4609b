// Package tracing routes the core tracer into test logs.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// SetTestingLog redirects the core tracer to the log of t, at the given
// trace level. The redirection is undone when the test completes.
func SetTestingLog(t *testing.T, level tracing.TraceLevel) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(level)
	t.Cleanup(teardown)
}
