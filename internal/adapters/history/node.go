package history

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/backsync/internal/core/ports"
)

// NodeID is the graft node that provides the scan history store.
const NodeID graft.ID = "adapter.scan_store"

func init() {
	graft.Register(graft.Node[ports.ScanStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScanStore, error) {
			return NewStore(), nil
		},
	})
}
