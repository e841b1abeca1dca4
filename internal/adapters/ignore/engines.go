package ignore

import (
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engines maps configured engine names to compilers.
type Engines struct {
	pattern *PatternCompiler
	git     *GitCompiler
}

// NewEngines creates the registry of supported ignore engines.
func NewEngines() *Engines {
	return &Engines{
		pattern: NewPatternCompiler(),
		git:     NewGitCompiler(),
	}
}

// Compiler returns the compiler for engine. An empty name selects the pattern engine.
func (e *Engines) Compiler(engine domain.IgnoreEngine) (ports.IgnoreCompiler, error) {
	switch engine {
	case domain.IgnoreEnginePattern, "":
		return e.pattern, nil
	case domain.IgnoreEngineGit:
		return e.git, nil
	default:
		return nil, zerr.With(domain.ErrUnknownIgnoreEngine, "engine", string(engine))
	}
}
