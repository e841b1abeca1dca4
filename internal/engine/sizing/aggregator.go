// Package sizing accumulates the backup size of included files and ranks the largest ones.
package sizing

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"go.trai.ch/backsync/internal/core/domain"
)

// Aggregator keeps a running total and the K largest distinct file sizes.
//
// Ranking is bucketed by size: all paths sharing a size live in one bucket, and
// eviction always drops the whole smallest bucket. It is not safe for concurrent use.
type Aggregator struct {
	k     int
	total int64
	files int
	ranks *treemap.Map // int64 -> []string
}

// New creates an Aggregator that ranks at most k distinct sizes. k <= 0 disables ranking.
func New(k int) *Aggregator {
	return &Aggregator{
		k:     k,
		ranks: treemap.NewWith(utils.Int64Comparator),
	}
}

// Observe records one included file.
func (a *Aggregator) Observe(path string, size int64) {
	a.total += size
	a.files++

	if a.k <= 0 {
		return
	}

	if a.ranks.Size() >= a.k {
		smallest, _ := a.ranks.Min()
		if size <= smallest.(int64) {
			return
		}
	}

	var paths []string
	if existing, ok := a.ranks.Get(size); ok {
		paths = existing.([]string)
	}
	a.ranks.Put(size, append(paths, path))

	if a.ranks.Size() > a.k {
		smallest, _ := a.ranks.Min()
		a.ranks.Remove(smallest)
	}
}

// Total returns the sum of all observed sizes.
func (a *Aggregator) Total() int64 {
	return a.total
}

// Files returns the number of observed files.
func (a *Aggregator) Files() int {
	return a.files
}

// TopK returns the retained buckets, largest size first. Paths keep observation order.
func (a *Aggregator) TopK() []domain.SizeBucket {
	buckets := make([]domain.SizeBucket, 0, a.ranks.Size())
	it := a.ranks.Iterator()
	for it.End(); it.Prev(); {
		paths := it.Value().([]string)
		buckets = append(buckets, domain.SizeBucket{
			Size:  it.Key().(int64),
			Paths: append([]string(nil), paths...),
		})
	}
	return buckets
}
