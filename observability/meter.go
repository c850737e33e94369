package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded around supplier queries
// and group fan-outs.
type Metrics struct {
	queryTotal     metric.Int64Counter
	queryDuration  metric.Float64Histogram
	failureTotal   metric.Int64Counter
	fanoutTotal    metric.Int64Counter
	fanoutDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	queryTotal, err := meter.Int64Counter("supplier.query.total",
		metric.WithDescription("Total number of supplier queries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating supplier.query.total counter: %w", err)
	}

	queryDuration, err := meter.Float64Histogram("supplier.query.duration",
		metric.WithDescription("Duration of supplier queries in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating supplier.query.duration histogram: %w", err)
	}

	failureTotal, err := meter.Int64Counter("supplier.failure.total",
		metric.WithDescription("Total supplier failures by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating supplier.failure.total counter: %w", err)
	}

	fanoutTotal, err := meter.Int64Counter("group.fanout.total",
		metric.WithDescription("Total number of group fan-out queries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating group.fanout.total counter: %w", err)
	}

	fanoutDuration, err := meter.Float64Histogram("group.fanout.duration",
		metric.WithDescription("Duration of group fan-out queries in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating group.fanout.duration histogram: %w", err)
	}

	return &Metrics{
		queryTotal:     queryTotal,
		queryDuration:  queryDuration,
		failureTotal:   failureTotal,
		fanoutTotal:    fanoutTotal,
		fanoutDuration: fanoutDuration,
	}, nil
}

// RecordQuery records one supplier query execution.
func (m *Metrics) RecordQuery(ctx context.Context, supplier, operation, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("supplier", supplier),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.queryTotal.Add(ctx, 1, attrs)
	m.queryDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("supplier", supplier),
		attribute.String("operation", operation),
	))
}

// RecordFailure records a supplier failure by error code.
func (m *Metrics) RecordFailure(ctx context.Context, supplier, code string) {
	m.failureTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("supplier", supplier),
		attribute.String("code", code),
	))
}

// RecordFanout records one completed group fan-out.
func (m *Metrics) RecordFanout(ctx context.Context, group string, members, successes, failures int, duration time.Duration) {
	m.fanoutTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("group", group),
		attribute.Int("members", members),
		attribute.Int("successes", successes),
		attribute.Int("failures", failures),
	))
	m.fanoutDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("group", group),
	))
}
