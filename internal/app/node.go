package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/internal/adapters/backend"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/editor"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/groupfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pacdef/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the command line needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			groupfile.NodeID,
			backend.NodeID,
			prompt.NodeID,
			linear.NodeID,
			editor.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	groupLoader, err := graft.Dep[ports.GroupLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[ports.BackendRegistry](ctx)
	if err != nil {
		return nil, err
	}

	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	ed, err := graft.Dep[ports.Editor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, groupLoader, registry, confirmer, renderer, ed, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log, Tracer: tracer}, nil
}
