package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/config"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.Probe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Probe, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(cfg.Probe), nil
		},
	})
}
