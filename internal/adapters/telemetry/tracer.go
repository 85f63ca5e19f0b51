// Package telemetry implements the progress telemetry adapters.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const cachedKey = attribute.Key("pin.cached")

// Tracer implements ports.Telemetry with OpenTelemetry spans.
// It owns its TracerProvider rather than touching the global one.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

var _ ports.Telemetry = (*Tracer)(nil)

// NewTracer creates a Tracer whose spans are processed synchronously by the given processors.
func NewTracer(name string, processors ...sdktrace.SpanProcessor) *Tracer {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	provider := sdktrace.NewTracerProvider(opts...)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(name),
	}
}

// Record starts a new span.
func (t *Tracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &Span{span: span}
}

// Close shuts the provider down, flushing every processor.
func (t *Tracer) Close() error {
	return t.provider.Shutdown(context.Background())
}

// Span implements ports.Vertex on top of an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Log adds a log event to the span.
func (s *Span) Log(level domain.LogLevel, msg string) {
	s.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete ends the span, recording err when not nil.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// Cached marks the span as satisfied from a cache.
func (s *Span) Cached() {
	s.span.SetAttributes(cachedKey.Bool(true))
}
