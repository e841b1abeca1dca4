package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/backsync/internal/adapters/history"
	"go.trai.ch/backsync/internal/core/domain"
)

func record(src string, total int64) domain.ScanRecord {
	return domain.ScanRecord{
		SrcDir:          src,
		TotalBytes:      total,
		IncludedFiles:   3,
		ExcludedEntries: 1,
		Fingerprint:     "00000000deadbeef",
		ScannedAt:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	t.Parallel()

	stateFile := filepath.Join(t.TempDir(), "state", "backsync_state.json")
	store := history.NewStore()

	want := record("/data", 1024)
	require.NoError(t, store.Put(stateFile, want))

	got, err := store.Get(stateFile, "/data")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_KeyedBySourceDirectory(t *testing.T) {
	t.Parallel()

	stateFile := filepath.Join(t.TempDir(), "backsync_state.json")
	store := history.NewStore()

	require.NoError(t, store.Put(stateFile, record("/data", 1)))
	require.NoError(t, store.Put(stateFile, record("/photos", 2)))
	require.NoError(t, store.Put(stateFile, record("/data", 3)))

	got, err := history.NewStore().Get(stateFile, "/data")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalBytes)

	got, err = store.Get(stateFile, "/photos")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalBytes)
}

func TestStore_MissingFileOrRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := history.NewStore()

	got, err := store.Get(filepath.Join(dir, "missing.json"), "/data")
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	got, err = store.Get(empty, "/data")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	stateFile := filepath.Join(t.TempDir(), "backsync_state.json")
	require.NoError(t, os.WriteFile(stateFile, []byte("{not json"), 0o600))
	store := history.NewStore()

	_, err := store.Get(stateFile, "/data")
	require.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())

	err = store.Put(stateFile, record("/data", 1))
	require.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}
