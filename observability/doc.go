// Package observability provides OpenTelemetry tracing and metrics for
// supplier-kit. It initializes tracer and meter providers with OTLP HTTP
// exporters, exposes span helpers used by the supplier middleware, and
// defines the metric instruments recorded around supplier queries and
// group fan-outs.
//
// Nothing in this package is required by the core supplier types; it is
// wired in through supplier.WithTracing, supplier.WithMetrics, and
// supplier.Instrument.
package observability
