package ports

import "go.trai.ch/backsync/internal/core/domain"

// IgnoreMatcher is a compiled ignore file bound to the directory that holds it.
type IgnoreMatcher interface {
	// Matches reports whether the absolute path is ignored by this file.
	Matches(path string, isDir bool) bool
}

// IgnoreCompiler compiles ignore files.
type IgnoreCompiler interface {
	// Compile parses the ignore file at path.
	Compile(path string) (IgnoreMatcher, error)
}

// IgnoreEngines resolves the compiler for a configured ignore engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=ignore.go -destination=mocks/mock_ignore.go -package=mocks
type IgnoreEngines interface {
	Compiler(engine domain.IgnoreEngine) (IgnoreCompiler, error)
}
