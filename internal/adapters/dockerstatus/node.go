package dockerstatus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/config"
	"go.scitex.ch/vessel/internal/core/domain"
)

const NodeID graft.ID = "adapter.docker_status"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(cfg.DockerServices), nil
		},
	})
}
