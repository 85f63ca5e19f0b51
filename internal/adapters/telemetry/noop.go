package telemetry

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

var _ ports.Telemetry = Noop{}

// Record returns ctx unchanged and a vertex that discards everything.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Log(_ domain.LogLevel, _ string) {}

func (noopVertex) Complete(_ error) {}

func (noopVertex) Cached() {}
