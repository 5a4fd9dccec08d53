package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symtab/internal/adapters/fs"
	"go.trai.ch/symtab/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.DigesterNodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(digester), nil
		},
	})
}
