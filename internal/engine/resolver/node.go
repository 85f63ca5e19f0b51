package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/git"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/vendor"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the resolver engine Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			git.VersionCacheNodeID,
			vendor.NodeID,
			vendor.ScanCacheNodeID,
			config.LockStoreNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			versions, err := graft.Dep[ports.VersionResolver](ctx)
			if err != nil {
				return nil, err
			}

			versionCache, err := graft.Dep[*git.VersionCache](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.TransitiveScanner](ctx)
			if err != nil {
				return nil, err
			}

			scanCache, err := graft.Dep[*vendor.ScanCache](ctx)
			if err != nil {
				return nil, err
			}

			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(versions, scanner, locks, tel, log, versionCache, scanCache), nil
		},
	})
}
