package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// GitCompiler compiles ignore files with git's own matching rules,
// including directory-only patterns and leading-slash anchoring.
type GitCompiler struct{}

// NewGitCompiler creates a GitCompiler.
func NewGitCompiler() *GitCompiler {
	return &GitCompiler{}
}

// Compile parses the ignore file at path.
func (c *GitCompiler) Compile(path string) (ports.IgnoreMatcher, error) {
	// NewGitIgnore reports a missing file but tolerates unreadable ones, so
	// probe readability first.
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIgnoreCompileFailed.Error()), "path", path)
	}
	_ = f.Close()

	matcher, err := gitignore.NewGitIgnore(path, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIgnoreCompileFailed.Error()), "path", path)
	}
	return &gitMatcher{matcher: matcher}, nil
}

type gitMatcher struct {
	matcher gitignore.IgnoreMatcher
}

func (m *gitMatcher) Matches(path string, isDir bool) bool {
	return m.matcher.Match(path, isDir)
}
