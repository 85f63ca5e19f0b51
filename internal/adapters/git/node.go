package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/logger"
	"go.trai.ch/pin/internal/adapters/shell"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the git version resolver Graft node.
	NodeID graft.ID = "adapter.git_resolver"
	// VersionCacheNodeID is the unique identifier for the version cache Graft node.
	VersionCacheNodeID graft.ID = "adapter.version_cache"
)

func init() {
	graft.Register(graft.Node[*VersionCache]{
		ID:        VersionCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*VersionCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewVersionCache(domain.DefaultVersionCachePath(), log), nil
		},
	})

	graft.Register(graft.Node[ports.VersionResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, VersionCacheNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionResolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			versions, err := graft.Dep[*VersionCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(runner, versions, log), nil
		},
	})
}
