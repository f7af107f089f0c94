package integrity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.scitex.ch/vessel/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "adapter.verifier"

func init() {
	graft.Register(graft.Node[ports.Verifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
