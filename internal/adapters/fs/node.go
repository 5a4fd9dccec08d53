package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symtab/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// SourceNodeID is the unique identifier for the source reader Graft node.
	SourceNodeID graft.ID = "adapter.fs.source"
	// DigesterNodeID is the unique identifier for the digester Graft node.
	DigesterNodeID graft.ID = "adapter.fs.digester"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSourceReader(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})
}
