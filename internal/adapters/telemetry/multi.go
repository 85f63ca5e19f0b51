package telemetry

import (
	"context"
	"errors"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

// Multi fans every recording out to several telemetry backends.
type Multi struct {
	backends []ports.Telemetry
}

var _ ports.Telemetry = (*Multi)(nil)

// NewMulti combines the given backends.
func NewMulti(backends ...ports.Telemetry) *Multi {
	return &Multi{backends: backends}
}

// Record starts a vertex on every backend. The returned context carries the
// context of each backend in turn.
func (m *Multi) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertices := make(multiVertex, 0, len(m.backends))
	for _, b := range m.backends {
		var v ports.Vertex
		ctx, v = b.Record(ctx, name)
		vertices = append(vertices, v)
	}
	return ctx, vertices
}

// Close closes every backend and joins their errors.
func (m *Multi) Close() error {
	var errs error
	for _, b := range m.backends {
		errs = errors.Join(errs, b.Close())
	}
	return errs
}

type multiVertex []ports.Vertex

func (mv multiVertex) Log(level domain.LogLevel, msg string) {
	for _, v := range mv {
		v.Log(level, msg)
	}
}

func (mv multiVertex) Complete(err error) {
	for _, v := range mv {
		v.Complete(err)
	}
}

func (mv multiVertex) Cached() {
	for _, v := range mv {
		v.Cached()
	}
}
