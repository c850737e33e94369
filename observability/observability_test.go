package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
)

func TestNewMetrics(t *testing.T) {
	// The default global provider is a no-op; instruments must still be
	// created and recordable without error.
	m, err := NewMetrics(otel.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	ctx := context.Background()
	m.RecordQuery(ctx, "s1", "search", "ok", 5*time.Millisecond)
	m.RecordFailure(ctx, "s2", "TIMEOUT")
	m.RecordFanout(ctx, "marketplace", 3, 2, 1, 12*time.Millisecond)
}

func TestQueryContextGeneratesID(t *testing.T) {
	qc := NewQueryContext("marketplace", "", nil)
	if qc.QueryID == "" {
		t.Error("expected a generated query ID")
	}

	qc2 := NewQueryContext("marketplace", "fixed-id", nil)
	if qc2.QueryID != "fixed-id" {
		t.Errorf("expected caller-provided ID to be kept, got %q", qc2.QueryID)
	}
}

func TestQueryContextRoundTrip(t *testing.T) {
	qc := NewQueryContext("g", "qid", nil)
	ctx := WithQueryContext(context.Background(), qc)

	got := QueryContextFromContext(ctx)
	if got != qc {
		t.Error("expected the stored QueryContext back")
	}
	if QueryContextFromContext(context.Background()) != nil {
		t.Error("expected nil for a bare context")
	}
}

func TestFanoutSpanLifecycle(t *testing.T) {
	qc := NewQueryContext("g", "", nil)
	ctx, span := qc.StartFanoutSpan(context.Background(), "group.query")
	qc.EndFanout(ctx, span, 2, 1, 1)

	if qc.Duration() < 0 {
		t.Error("expected non-negative duration")
	}
}
