package slot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/config"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

const NodeID graft.ID = "adapter.slot_updater"

func init() {
	graft.Register(graft.Node[ports.SlotUpdater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SlotUpdater, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			path := cfg.SlotPath
			if path == "" {
				path = domain.DefaultSlotPath(cfg.ContainersDir)
			}
			return NewUpdater(path), nil
		},
	})
}
