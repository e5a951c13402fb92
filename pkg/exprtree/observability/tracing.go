package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the exprtree tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("exprtree")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRunSpan starts a span for an entire engine run.
	// Returns the context with span and the span itself.
	StartRunSpan(ctx context.Context, runID string, inputLen int) (context.Context, trace.Span)

	// StartPhaseSpan starts a span for one pipeline phase.
	// The phase span should be a child of the run span.
	StartPhaseSpan(ctx context.Context, phase string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRunSpan starts a span for an entire engine run.
func (m *otelSpanManager) StartRunSpan(ctx context.Context, runID string, inputLen int) (context.Context, trace.Span) {
	return StartRunSpan(ctx, runID, inputLen)
}

// StartPhaseSpan starts a span for one pipeline phase.
func (m *otelSpanManager) StartPhaseSpan(ctx context.Context, phase string) (context.Context, trace.Span) {
	return StartPhaseSpan(ctx, phase)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartRunSpan starts a span for an entire engine run.
// Uses the global OTel tracer.
func StartRunSpan(ctx context.Context, runID string, inputLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "exprtree.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("input.len", inputLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartPhaseSpan starts a span for one pipeline phase.
// Uses the global OTel tracer.
func StartPhaseSpan(ctx context.Context, phase string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "exprtree."+phase,
		trace.WithAttributes(
			attribute.String("phase", phase),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
