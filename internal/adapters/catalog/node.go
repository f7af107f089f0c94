package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/config"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

// NodeID is the unique identifier for the catalog store Graft node.
const NodeID graft.ID = "adapter.catalog_store"

func init() {
	graft.Register(graft.Node[ports.CatalogStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.ContainersDir), nil
		},
	})
}
