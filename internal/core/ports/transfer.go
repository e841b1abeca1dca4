package ports

import (
	"context"

	"go.trai.ch/backsync/internal/core/domain"
)

// Transferer hands a sync request to the external transfer engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=transfer.go -destination=mocks/mock_transfer.go -package=mocks
type Transferer interface {
	// Transfer runs one sync and blocks until the engine exits.
	Transfer(ctx context.Context, req domain.TransferRequest) error
}
