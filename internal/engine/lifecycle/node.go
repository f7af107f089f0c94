package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/adapters/catalog"
	"go.scitex.ch/vessel/internal/adapters/flock"
	"go.scitex.ch/vessel/internal/adapters/integrity"
	"go.scitex.ch/vessel/internal/adapters/logger"
	"go.scitex.ch/vessel/internal/adapters/probe"
	"go.scitex.ch/vessel/internal/adapters/slot"
	"go.scitex.ch/vessel/internal/core/ports"
)

// NodeID is the unique identifier for the lifecycle manager Graft node.
const NodeID graft.ID = "engine.lifecycle"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			integrity.NodeID,
			probe.NodeID,
			slot.NodeID,
			flock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			store, err := graft.Dep[ports.CatalogStore](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			prb, err := graft.Dep[ports.Probe](ctx)
			if err != nil {
				return nil, err
			}
			updater, err := graft.Dep[ports.SlotUpdater](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.CatalogLocker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(store, verifier, prb, updater, locker, log), nil
		},
	})
}
