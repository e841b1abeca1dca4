package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/backsync/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/backsync/internal/adapters/history"  //nolint:depguard // Wired in app layer
	"go.trai.ch/backsync/internal/adapters/ignore"   //nolint:depguard // Wired in app layer
	"go.trai.ch/backsync/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/backsync/internal/adapters/transfer" //nolint:depguard // Wired in app layer
	"go.trai.ch/backsync/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ignore.NodeID,
			transfer.NodeID,
			history.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	engines, err := graft.Dep[ports.IgnoreEngines](ctx)
	if err != nil {
		return nil, err
	}

	transferer, err := graft.Dep[ports.Transferer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ScanStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, engines, transferer, store, log), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
