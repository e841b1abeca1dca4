package sizing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/engine/sizing"
)

func TestAggregator_EvictsWholeSmallestBucket(t *testing.T) {
	t.Parallel()

	agg := sizing.New(2)
	agg.Observe("/a", 10)
	agg.Observe("/b", 30)
	agg.Observe("/c", 20)
	agg.Observe("/d", 30)

	assert.Equal(t, []domain.SizeBucket{
		{Size: 30, Paths: []string{"/b", "/d"}},
		{Size: 20, Paths: []string{"/c"}},
	}, agg.TopK())
	assert.Equal(t, int64(90), agg.Total())
	assert.Equal(t, 4, agg.Files())
}

func TestAggregator_RejectsTieWithSmallestAtCapacity(t *testing.T) {
	t.Parallel()

	agg := sizing.New(2)
	agg.Observe("/a", 20)
	agg.Observe("/b", 30)
	agg.Observe("/c", 20)
	agg.Observe("/d", 5)

	assert.Equal(t, []domain.SizeBucket{
		{Size: 30, Paths: []string{"/b"}},
		{Size: 20, Paths: []string{"/a"}},
	}, agg.TopK())
}

func TestAggregator_BelowCapacityAppendsTies(t *testing.T) {
	t.Parallel()

	agg := sizing.New(3)
	agg.Observe("/a", 7)
	agg.Observe("/b", 7)
	agg.Observe("/c", 1)

	assert.Equal(t, []domain.SizeBucket{
		{Size: 7, Paths: []string{"/a", "/b"}},
		{Size: 1, Paths: []string{"/c"}},
	}, agg.TopK())
}

func TestAggregator_DisabledRanking(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, -1} {
		agg := sizing.New(k)
		agg.Observe("/a", 100)
		agg.Observe("/b", 200)

		assert.Empty(t, agg.TopK())
		assert.Equal(t, int64(300), agg.Total())
	}
}

func TestAggregator_TotalIndependentOfOrder(t *testing.T) {
	t.Parallel()

	sizes := []int64{0, 1, 5_000_000, 42, 42, 9_999}
	forward, backward := sizing.New(1), sizing.New(1)
	var want int64
	for i, s := range sizes {
		want += s
		forward.Observe("f", s)
		backward.Observe("b", sizes[len(sizes)-1-i])
	}

	assert.Equal(t, want, forward.Total())
	assert.Equal(t, want, backward.Total())
	assert.Equal(t, int64(5_000_000), forward.TopK()[0].Size)
}
