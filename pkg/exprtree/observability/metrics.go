package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records exprtree metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRun records an engine run completion.
	RecordRun(ctx context.Context, success bool, duration time.Duration)

	// RecordPhase records one pipeline phase with its duration and error status.
	RecordPhase(ctx context.Context, phase string, duration time.Duration, err error)

	// RecordEncodedSize records the size of an encoded expression stream.
	RecordEncodedSize(ctx context.Context, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	runs         metric.Int64Counter
	runLatency   metric.Float64Histogram
	phaseLatency metric.Float64Histogram
	phaseErrors  metric.Int64Counter
	encodedSize  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("exprtree")

	runs, err := meter.Int64Counter("exprtree.runs",
		metric.WithDescription("Number of engine runs"),
	)
	if err != nil {
		return nil, err
	}

	runLatency, err := meter.Float64Histogram("exprtree.run.latency_ms",
		metric.WithDescription("Engine run latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	phaseLatency, err := meter.Float64Histogram("exprtree.phase.latency_ms",
		metric.WithDescription("Pipeline phase latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	phaseErrors, err := meter.Int64Counter("exprtree.phase.errors",
		metric.WithDescription("Number of pipeline phase errors"),
	)
	if err != nil {
		return nil, err
	}

	encodedSize, err := meter.Int64Histogram("exprtree.encoded.size_bytes",
		metric.WithDescription("Encoded expression stream size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		runs:         runs,
		runLatency:   runLatency,
		phaseLatency: phaseLatency,
		phaseErrors:  phaseErrors,
		encodedSize:  encodedSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRun records an engine run.
func (m *otelMetrics) RecordRun(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.runLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordPhase records one pipeline phase.
func (m *otelMetrics) RecordPhase(ctx context.Context, phase string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("phase", phase),
	}

	m.phaseLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.phaseErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordEncodedSize records an encoded stream size.
func (m *otelMetrics) RecordEncodedSize(ctx context.Context, sizeBytes int64) {
	m.encodedSize.Record(ctx, sizeBytes)
}
