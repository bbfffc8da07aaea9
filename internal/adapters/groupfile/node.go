package groupfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/internal/adapters/logger"
	"go.trai.ch/pacdef/internal/core/ports"
)

// NodeID is the unique identifier for the group loader Graft node.
const NodeID graft.ID = "adapter.group_loader"

func init() {
	graft.Register(graft.Node[ports.GroupLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GroupLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
