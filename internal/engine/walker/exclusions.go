package walker

import (
	"iter"
	"path/filepath"

	"go.trai.ch/backsync/internal/core/domain"
)

// Exclusions turns the excluded entries of a walk over root into transfer-engine
// patterns, in traversal order and without duplicates.
func Exclusions(root string, entries iter.Seq[domain.Entry]) iter.Seq[domain.Exclusion] {
	return func(yield func(domain.Exclusion) bool) {
		seen := make(map[string]struct{})
		for entry := range entries {
			if !entry.Excluded {
				continue
			}

			rel, err := filepath.Rel(root, entry.Path)
			if err != nil {
				continue
			}

			pattern := domain.PathToPattern(filepath.ToSlash(rel))
			if _, dup := seen[pattern]; dup {
				continue
			}
			seen[pattern] = struct{}{}

			if !yield(domain.Exclusion{Entry: entry, Pattern: pattern}) {
				return
			}
		}
	}
}
