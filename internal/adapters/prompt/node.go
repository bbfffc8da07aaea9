package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/internal/core/ports"
)

// NodeID is the unique identifier for the confirmer Graft node.
const NodeID graft.ID = "adapter.confirmer"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Confirmer, error) {
			return NewConfirmer(nil, nil), nil
		},
	})
}
