package supplier

import (
	"context"
	"time"

	"github.com/jerry-maheswara-github/supplier-kit/errors"
	"github.com/jerry-maheswara-github/supplier-kit/observability"
)

// WithMetrics returns a Middleware that records query metrics using the
// observability.Metrics instruments. Records: query count, duration
// histogram, and failures by error code.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Supplier) Supplier {
		return &metricsSupplier{inner: inner, metrics: metrics}
	}
}

type metricsSupplier struct {
	inner   Supplier
	metrics *observability.Metrics
}

func (m *metricsSupplier) Name() string { return m.inner.Name() }

func (m *metricsSupplier) Query(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, err := m.inner.Query(ctx, req)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		code := "UNKNOWN"
		if appErr, ok := errors.AsAppError(err); ok {
			code = string(appErr.Code)
		}
		m.metrics.RecordFailure(ctx, m.inner.Name(), code)
	}
	m.metrics.RecordQuery(ctx, m.inner.Name(), req.Operation.String(), status, duration)

	return resp, err
}
