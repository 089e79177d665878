package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTraceparent = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func TestTraceFields(t *testing.T) {
	fields := traceFields(testTraceparent, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}

	wantTrace := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
	if fields[0].Key != "logging.googleapis.com/trace" || fields[0].String != wantTrace {
		t.Fatalf("unexpected trace field: %+v", fields[0])
	}
	if fields[1].Key != "logging.googleapis.com/spanId" || fields[1].String != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %+v", fields[1])
	}
	if fields[2].Key != "logging.googleapis.com/trace_sampled" || fields[2].Type != zapcore.BoolType ||
		fields[2].Integer != 1 {
		t.Fatalf("unexpected sampled field: %+v", fields[2])
	}
}

func TestTraceFieldsSampledBit(t *testing.T) {
	tests := []struct {
		flags   string
		sampled bool
	}{
		{"00", false},
		{"01", true},
		{"02", false},
		{"03", true},
		{"ff", true},
	}
	for _, tt := range tests {
		tc, ok := parseTraceparent("00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-" + tt.flags)
		if !ok {
			t.Fatalf("flags %s: expected header to parse", tt.flags)
		}
		if tc.sampled != tt.sampled {
			t.Fatalf("flags %s: sampled = %v, want %v", tt.flags, tc.sampled, tt.sampled)
		}
	}
}

func TestTraceFieldsInvalid(t *testing.T) {
	if fields := traceFields("invalid", "test-project"); fields != nil {
		t.Fatalf("expected nil fields for invalid header, got %v", fields)
	}
	if fields := traceFields("", "test-project"); fields != nil {
		t.Fatalf("expected nil fields for empty header, got %v", fields)
	}
	if fields := traceFields("105445aa7843bc8bf206b12000100000/1;o=1", "test-project"); fields != nil {
		t.Fatalf("expected nil fields for legacy X-Cloud-Trace-Context format, got %v", fields)
	}
	if fields := traceFields(testTraceparent, ""); fields != nil {
		t.Fatalf("expected nil fields when projectID missing, got %v", fields)
	}
}

func TestCorrelationID(t *testing.T) {
	if got := correlationID(testTraceparent, "p", "req-1"); got != "projects/p/traces/3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("expected trace resource, got %q", got)
	}
	if got := correlationID(testTraceparent, "", "req-1"); got != "req-1" {
		t.Fatalf("expected request ID without project, got %q", got)
	}
	if got := correlationID("garbage", "p", "req-1"); got != "req-1" {
		t.Fatalf("expected request ID for bad header, got %q", got)
	}
}

func TestLoggerWithTraceAddsCloudFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	loggerWithTrace(zap.New(core), testTraceparent, "test-project", "req-123").Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["requestId"] != "req-123" {
		t.Fatalf("requestId field not found: %+v", fields)
	}
	if fields["logging.googleapis.com/trace"] != "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("trace field not found: %+v", fields)
	}
}

func TestLoggerWithTraceNoFieldsReturnsBase(t *testing.T) {
	base := zap.NewNop()
	if got := loggerWithTrace(base, "", "", ""); got != base {
		t.Fatal("expected base logger when there is nothing to add")
	}
}
