package supplier

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/jerry-maheswara-github/supplier-kit/logger"
	"github.com/jerry-maheswara-github/supplier-kit/observability"
)

func TestInstrumentPreservesPartition(t *testing.T) {
	inner := NewBasicGroup("g")
	inner.AddSupplier(&testSupplier{name: "s1"})
	inner.AddSupplier(&testSupplier{name: "s2", shouldFail: true})
	inner.AddSupplier(&testSupplier{name: "s3"})

	metrics, err := observability.NewMetrics(otel.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	wrapped := Instrument(inner, logger.NewDefault("test"), metrics)
	if wrapped.GroupName() != "g" {
		t.Errorf("expected group name passthrough, got %q", wrapped.GroupName())
	}

	result := wrapped.Query(context.Background(), Request{Operation: Search})

	if len(result.Successes) != 2 {
		t.Errorf("expected 2 successes, got %d", len(result.Successes))
	}
	if len(result.Failures) != 1 || result.Failures[0].Supplier != "s2" {
		t.Errorf("expected failure from s2, got %v", result.Failures)
	}
	if result.Successes[0].Supplier != "s1" || result.Successes[1].Supplier != "s3" {
		t.Errorf("expected ordered successes [s1 s3], got %v", result.Successes)
	}
}

func TestInstrumentNilDependencies(t *testing.T) {
	inner := NewBasicGroup("g")
	inner.AddSupplier(&testSupplier{name: "s1"})

	// nil logger falls back to the global logger; nil metrics skips
	// metric recording.
	wrapped := Instrument(inner, nil, nil)

	result := wrapped.Query(context.Background(), Request{Operation: Search})
	if len(result.Successes) != 1 {
		t.Errorf("expected 1 success, got %d", len(result.Successes))
	}
}

func TestInstrumentExposesQueryID(t *testing.T) {
	inner := NewBasicGroup("g")

	var queryID string
	inner.AddSupplier(&testSupplier{name: "probe", onQuery: func(Request) {}})

	// Capture the query context the wrapper injects.
	probe := &contextProbe{name: "ctx-probe", seen: &queryID}
	inner.AddSupplier(probe)

	Instrument(inner, logger.NewDefault("test"), nil).Query(context.Background(), Request{Operation: Search})

	if queryID == "" {
		t.Error("expected members to observe the fan-out query ID")
	}
}

type contextProbe struct {
	name string
	seen *string
}

func (p *contextProbe) Name() string { return p.name }

func (p *contextProbe) Query(ctx context.Context, req Request) (Response, error) {
	if qc := observability.QueryContextFromContext(ctx); qc != nil {
		*p.seen = qc.QueryID
	}
	return Response{}, nil
}
