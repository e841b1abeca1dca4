// Package walker implements the classifying directory traversal.
package walker

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/karrick/godirwalk"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/backsync/internal/engine/rules"
)

// Walker enumerates a tree and classifies every entry it reaches.
type Walker struct {
	classifier *rules.Classifier
	compiler   ports.IgnoreCompiler
	ignoreFile string
	logger     ports.Logger
}

// New creates a Walker. ignoreFile is the per-directory ignore file name, e.g. ".gitignore".
func New(classifier *rules.Classifier, compiler ports.IgnoreCompiler, ignoreFile string, logger ports.Logger) *Walker {
	return &Walker{
		classifier: classifier,
		compiler:   compiler,
		ignoreFile: ignoreFile,
		logger:     logger,
	}
}

// frame is one directory on the pending stack. scopes is shared with sibling
// frames and must never be appended to in place.
type frame struct {
	dir    string
	scopes rules.Scopes
	names  []string
	next   int
}

// Walk yields every entry below root in depth-first pre-order.
// Excluded entries are yielded and never descended into; included directories
// are descended into but not yielded themselves. Filesystem errors exclude
// the affected entry and never stop the walk.
func (w *Walker) Walk(root string) iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		cache := rules.NewIgnoreCache(w.compiler, w.ignoreFile)

		names, err := readDirnames(root)
		if err != nil {
			w.logger.Warn("can't list source root", "path", root, "error", err)
			return
		}

		stack := []*frame{{
			dir:    root,
			scopes: w.inherit(cache, root, names, nil),
			names:  names,
		}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.names) {
				stack = stack[:len(stack)-1]
				continue
			}

			path := filepath.Join(top.dir, top.names[top.next])
			top.next++

			entry, child := w.visit(cache, path, top.scopes)
			if child != nil {
				stack = append(stack, child)
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// visit classifies one path. It returns a frame to push when the path is an
// included directory, otherwise the entry to yield.
func (w *Walker) visit(cache *rules.IgnoreCache, path string, scopes rules.Scopes) (domain.Entry, *frame) {
	entry := domain.Entry{Path: path}
	candidate := rules.Candidate{Path: path}

	info, link, err := stat(path)
	if err != nil {
		w.logger.Warn("can't access entry", "path", path, "reason", domain.ReasonInaccessible, "error", err)
		candidate.Err = err
	} else {
		entry.IsDir, entry.Size = info.IsDir(), info.Size()
		candidate.IsDir, candidate.Size = entry.IsDir, entry.Size
	}

	entry.Excluded, entry.Reason = w.classifier.Classify(candidate, scopes)

	// Symlinked directories are reported but not followed.
	if entry.Excluded || !entry.IsDir || link {
		return entry, nil
	}

	names, err := readDirnames(path)
	if err != nil {
		w.logger.Warn("can't list directory", "path", path, "reason", domain.ReasonInaccessible, "error", err)
		candidate.Err = err
		entry.Excluded, entry.Reason = w.classifier.Classify(candidate, scopes)
		return entry, nil
	}

	return entry, &frame{
		dir:    path,
		scopes: w.inherit(cache, path, names, scopes),
		names:  names,
	}
}

// inherit extends scopes with dir's own ignore file when its listing has one.
func (w *Walker) inherit(cache *rules.IgnoreCache, dir string, names []string, scopes rules.Scopes) rules.Scopes {
	if !slices.Contains(names, cache.FileName()) {
		return scopes
	}

	scope, ok, err := cache.Scope(dir)
	if err != nil {
		w.logger.Warn("ignoring unreadable ignore file", "dir", dir, "ignore_file", cache.FileName(), "error", err)
	}
	if !ok {
		return scopes
	}
	return scopes.With(scope)
}

// stat follows symlinks and reports whether path itself is one.
func stat(path string) (os.FileInfo, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, false, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return info, false, nil
	}
	info, err = os.Stat(path)
	return info, true, err
}

// readDirnames lists dir in lexical order so traversal is deterministic.
func readDirnames(dir string) ([]string, error) {
	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
