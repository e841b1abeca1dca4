// Package rules implements the exclusion rule layers and the classifier that combines them.
package rules

import (
	"regexp"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// GlobalPatterns holds the configured global ignore regexes.
type GlobalPatterns struct {
	patterns []*regexp.Regexp
}

// NewGlobalPatterns compiles the given regexes.
// Each regex must match at the start of the path, not anywhere inside it.
func NewGlobalPatterns(exprs []string) (*GlobalPatterns, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := compileAnchored(expr)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, re)
	}
	return &GlobalPatterns{patterns: patterns}, nil
}

// Matches reports whether any pattern matches the slash-separated absolute path.
func (g *GlobalPatterns) Matches(path string) bool {
	for _, re := range g.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

func compileAnchored(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", expr)
	}
	return re, nil
}
