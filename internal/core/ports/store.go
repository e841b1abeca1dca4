package ports

import "go.trai.ch/backsync/internal/core/domain"

// ScanStore defines the interface for storing and retrieving scan records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ScanStore interface {
	// Get retrieves the last record for srcDir from the state file.
	// Returns nil, nil if not found.
	Get(stateFile, srcDir string) (*domain.ScanRecord, error)

	// Put stores the record in the state file, replacing any previous one for its SrcDir.
	Put(stateFile string, rec domain.ScanRecord) error
}
