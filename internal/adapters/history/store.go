// Package history persists scan records so consecutive size scans can be compared.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ScanStore using a flat JSON file keyed by source directory.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the last record for srcDir. It returns nil, nil when the file
// or the record does not exist.
func (s *Store) Get(stateFile, srcDir string) (*domain.ScanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(stateFile)
	if err != nil {
		return nil, err
	}

	rec, ok := records[srcDir]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores rec, replacing any previous record for the same source directory.
func (s *Store) Put(stateFile string, rec domain.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(stateFile)
	if err != nil {
		return err
	}
	records[rec.SrcDir] = rec

	return save(stateFile, records)
}

func load(path string) (map[string]domain.ScanRecord, error) {
	records := make(map[string]domain.ScanRecord)

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	return records, nil
}

func save(path string, records map[string]domain.ScanRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path comes from the user's configuration
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
