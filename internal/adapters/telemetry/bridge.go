package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pin/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor by forwarding span lifecycles to a logger
// at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(fmt.Sprintf("%s: started", s.Name()))
}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	status := "done"
	for _, attr := range s.Attributes() {
		if attr.Key == cachedKey && attr.Value.AsBool() {
			status = "cached"
		}
	}
	if s.Status().Code == codes.Error {
		status = "failed: " + s.Status().Description
	}

	b.logger.Debug(fmt.Sprintf("%s: %s in %s", s.Name(), status, elapsed))
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
