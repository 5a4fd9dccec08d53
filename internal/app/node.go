package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symtab/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/symtab/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/symtab/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/symtab/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/symtab/internal/core/ports"
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
			fs.SourceNodeID,
			cas.NodeID,
			fs.DigesterNodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
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
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sources, store, digester, log), nil
}
