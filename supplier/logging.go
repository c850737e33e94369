package supplier

import (
	"context"
	"time"

	"github.com/jerry-maheswara-github/supplier-kit/logger"
)

// WithLogging returns a Middleware that logs each Query call.
// Logs: supplier name, operation, duration, and success/error status.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Supplier) Supplier {
		return &loggingSupplier{inner: inner, log: log}
	}
}

type loggingSupplier struct {
	inner Supplier
	log   *logger.Logger
}

func (l *loggingSupplier) Name() string { return l.inner.Name() }

func (l *loggingSupplier) Query(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	resp, err := l.inner.Query(ctx, req)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldSupplier:  l.inner.Name(),
		logger.FieldOperation: req.Operation.String(),
		logger.FieldDuration:  duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		l.log.Error("supplier query failed", fields)
	} else {
		l.log.Debug("supplier query ok", fields)
	}

	return resp, err
}
