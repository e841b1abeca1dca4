package transfer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/backsync/internal/adapters/logger"
	"go.trai.ch/backsync/internal/core/ports"
)

// NodeID is the graft node that provides the transfer runner.
const NodeID graft.ID = "adapter.transferer"

func init() {
	graft.Register(graft.Node[ports.Transferer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Transferer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
