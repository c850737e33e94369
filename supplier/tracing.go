package supplier

import (
	"context"

	"github.com/jerry-maheswara-github/supplier-kit/observability"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Query call. The span name is "{serviceName}.{supplierName}".
// When the query runs inside an instrumented group fan-out, the span also
// carries the fan-out's query ID.
func WithTracing(serviceName string) Middleware {
	return func(inner Supplier) Supplier {
		return &tracingSupplier{inner: inner, serviceName: serviceName}
	}
}

type tracingSupplier struct {
	inner       Supplier
	serviceName string
}

func (t *tracingSupplier) Name() string { return t.inner.Name() }

func (t *tracingSupplier) Query(ctx context.Context, req Request) (Response, error) {
	spanName := t.serviceName + "." + t.inner.Name()
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrServiceName, t.serviceName)
	observability.SetSpanAttribute(ctx, observability.AttrSupplierName, t.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, req.Operation.String())
	if qc := observability.QueryContextFromContext(ctx); qc != nil {
		observability.SetSpanAttribute(ctx, observability.AttrQueryID, qc.QueryID)
	}

	resp, err := t.inner.Query(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}

	return resp, err
}
