package editor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/internal/adapters/shell"
	"go.trai.ch/pacdef/internal/core/ports"
)

// NodeID is the unique identifier for the editor Graft node.
const NodeID graft.ID = "adapter.editor"

func init() {
	graft.Register(graft.Node[ports.Editor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Editor, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
