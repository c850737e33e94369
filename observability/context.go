package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// QueryContext holds observability context for one group fan-out query.
type QueryContext struct {
	GroupName string
	QueryID   string
	StartTime time.Time
	Metrics   *Metrics
}

// NewQueryContext creates a query context for a group fan-out. When
// queryID is empty a UUID is generated. If metrics is nil, metric
// recording is silently skipped.
func NewQueryContext(groupName, queryID string, metrics *Metrics) *QueryContext {
	if queryID == "" {
		queryID = uuid.NewString()
	}
	return &QueryContext{
		GroupName: groupName,
		QueryID:   queryID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// queryContextKey is the context key for QueryContext.
type queryContextKey struct{}

// WithQueryContext stores a QueryContext in the context.
func WithQueryContext(ctx context.Context, qc *QueryContext) context.Context {
	return context.WithValue(ctx, queryContextKey{}, qc)
}

// QueryContextFromContext retrieves the QueryContext from context, or nil.
func QueryContextFromContext(ctx context.Context) *QueryContext {
	if qc, ok := ctx.Value(queryContextKey{}).(*QueryContext); ok {
		return qc
	}
	return nil
}

// StartFanoutSpan starts a traced span covering the whole fan-out.
func (qc *QueryContext) StartFanoutSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrGroupName, qc.GroupName),
		attribute.String(AttrQueryID, qc.QueryID),
	)
	return ctx, span
}

// EndFanout ends the span and records fan-out metrics.
func (qc *QueryContext) EndFanout(ctx context.Context, span trace.Span, members, successes, failures int) {
	duration := time.Since(qc.StartTime)

	span.SetAttributes(
		attribute.Int(AttrMemberCount, members),
		attribute.Int(AttrSuccessCount, successes),
		attribute.Int(AttrFailureCount, failures),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if qc.Metrics != nil {
		qc.Metrics.RecordFanout(ctx, qc.GroupName, members, successes, failures, duration)
	}
}

// Duration returns the elapsed time since the fan-out started.
func (qc *QueryContext) Duration() time.Duration {
	return time.Since(qc.StartTime)
}
