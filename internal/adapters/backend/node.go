package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/internal/adapters/shell"
	"go.trai.ch/pacdef/internal/core/ports"
)

// NodeID is the unique identifier for the backend registry Graft node.
const NodeID graft.ID = "adapter.backend_registry"

func init() {
	graft.Register(graft.Node[ports.BackendRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BackendRegistry, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(runner), nil
		},
	})
}
