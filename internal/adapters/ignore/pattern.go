// Package ignore compiles per-directory ignore files into matchers.
package ignore

import (
	"path/filepath"
	"strings"

	sabhiram "github.com/sabhiram/go-gitignore"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// PatternCompiler compiles ignore files with the gitignore-style pattern dialect.
type PatternCompiler struct{}

// NewPatternCompiler creates a PatternCompiler.
func NewPatternCompiler() *PatternCompiler {
	return &PatternCompiler{}
}

// Compile parses the ignore file at path.
func (c *PatternCompiler) Compile(path string) (ports.IgnoreMatcher, error) {
	compiled, err := sabhiram.CompileIgnoreFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIgnoreCompileFailed.Error()), "path", path)
	}
	return &patternMatcher{dir: filepath.Dir(path), compiled: compiled}, nil
}

type patternMatcher struct {
	dir      string
	compiled *sabhiram.GitIgnore
}

// Matches checks path relative to the ignore file's directory. Directories
// carry a trailing slash so that "name/" patterns only hit directories.
func (m *patternMatcher) Matches(path string, isDir bool) bool {
	rel, err := filepath.Rel(m.dir, path)
	if err != nil || rel == "." || outside(rel) {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return m.compiled.MatchesPath(rel)
}

// outside reports whether rel climbs out of the ignore file's directory.
// Names that merely start with two dots, like "..cache", are inside.
func outside(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
