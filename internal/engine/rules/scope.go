package rules

import (
	"path/filepath"

	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scope is a compiled ignore file and the directory it governs.
type Scope struct {
	Dir     string
	Matcher ports.IgnoreMatcher
}

// Scopes is the ordered list of ignore files inherited from the root down to a directory.
type Scopes []Scope

// Matches reports whether any inherited scope ignores the path.
// There is no negation across scopes: a descendant file cannot re-include what an ancestor ignores.
func (s Scopes) Matches(path string, isDir bool) bool {
	for _, scope := range s {
		if scope.Matcher.Matches(path, isDir) {
			return true
		}
	}
	return false
}

// With returns a new list extended by scope. The receiver is never modified,
// so sibling directories can keep sharing it.
func (s Scopes) With(scope Scope) Scopes {
	next := make(Scopes, len(s), len(s)+1)
	copy(next, s)
	return append(next, scope)
}

// IgnoreCache compiles the ignore file of each directory at most once.
// A cache belongs to a single traversal and is not safe for concurrent use.
type IgnoreCache struct {
	compiler ports.IgnoreCompiler
	fileName string
	scopes   map[string]*Scope
}

// NewIgnoreCache creates a cache for ignore files called fileName.
func NewIgnoreCache(compiler ports.IgnoreCompiler, fileName string) *IgnoreCache {
	return &IgnoreCache{
		compiler: compiler,
		fileName: fileName,
		scopes:   make(map[string]*Scope),
	}
}

// FileName returns the ignore file name this cache looks for.
func (c *IgnoreCache) FileName() string {
	return c.fileName
}

// Scope returns the compiled scope of dir. The caller must already know that
// dir contains the ignore file. A failed compile is remembered as "no scope".
func (c *IgnoreCache) Scope(dir string) (Scope, bool, error) {
	if cached, ok := c.scopes[dir]; ok {
		if cached == nil {
			return Scope{}, false, nil
		}
		return *cached, true, nil
	}

	path := filepath.Join(dir, c.fileName)
	matcher, err := c.compiler.Compile(path)
	if err != nil {
		c.scopes[dir] = nil
		return Scope{}, false, zerr.With(err, "ignore_file", path)
	}

	scope := &Scope{Dir: dir, Matcher: matcher}
	c.scopes[dir] = scope
	return *scope, true, nil
}
