package ignore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/backsync/internal/core/ports"
)

// NodeID is the graft node that provides the ignore engine registry.
const NodeID graft.ID = "adapter.ignore_engines"

func init() {
	graft.Register(graft.Node[ports.IgnoreEngines]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IgnoreEngines, error) {
			return NewEngines(), nil
		},
	})
}
