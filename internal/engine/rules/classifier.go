package rules

import (
	"path/filepath"

	"go.trai.ch/backsync/internal/core/domain"
)

// Candidate is an entry awaiting classification.
type Candidate struct {
	Path  string
	IsDir bool
	Size  int64
	// Err is set when the entry could not be introspected.
	Err error
}

// Classifier combines the rule layers into one excluded/included decision.
type Classifier struct {
	global *GlobalPatterns
	sizes  *SizeRules
}

// NewClassifier compiles the global and size rules of a configuration.
func NewClassifier(globalIgnores []string, sizeLimits map[string]string) (*Classifier, error) {
	global, err := NewGlobalPatterns(globalIgnores)
	if err != nil {
		return nil, err
	}
	sizes, err := NewSizeRules(sizeLimits)
	if err != nil {
		return nil, err
	}
	return &Classifier{global: global, sizes: sizes}, nil
}

// Classify reports whether c is excluded and by which layer.
// The layers are OR-ed; the order below only decides the reported reason.
func (cl *Classifier) Classify(c Candidate, scopes Scopes) (bool, domain.Reason) {
	if c.Err != nil {
		return true, domain.ReasonInaccessible
	}

	posix := filepath.ToSlash(c.Path)
	if cl.global.Matches(posix) {
		return true, domain.ReasonGlobal
	}
	if !c.IsDir && cl.sizes.Exceeds(posix, c.Size) {
		return true, domain.ReasonSize
	}
	if scopes.Matches(c.Path, c.IsDir) {
		return true, domain.ReasonIgnoreFile
	}
	return false, domain.ReasonNone
}
