package status

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/catalog"
	"go.scitex.ch/vessel/internal/adapters/dockerstatus"
	"go.scitex.ch/vessel/internal/adapters/hoststatus"
	"go.scitex.ch/vessel/internal/adapters/integrity"
	"go.scitex.ch/vessel/internal/core/ports"
)

// NodeID is the unique identifier for the status aggregator Graft node.
const NodeID graft.ID = "engine.status"

func init() {
	graft.Register(graft.Node[*Aggregator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			integrity.NodeID,
			dockerstatus.NodeID,
			hoststatus.NodeID,
		},
		Run: func(ctx context.Context) (*Aggregator, error) {
			store, err := graft.Dep[ports.CatalogStore](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			docker, err := graft.Dep[*dockerstatus.Provider](ctx)
			if err != nil {
				return nil, err
			}
			host, err := graft.Dep[*hoststatus.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return NewAggregator(store, verifier, docker, host), nil
		},
	})
}
