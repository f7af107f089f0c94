package flock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/config"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

// NodeID is the unique identifier for the catalog locker Graft node.
const NodeID graft.ID = "adapter.catalog_locker"

func init() {
	graft.Register(graft.Node[ports.CatalogLocker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogLocker, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(domain.CatalogLockPath(cfg.ContainersDir), cfg.LockWait), nil
		},
	})
}
