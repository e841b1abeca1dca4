// Package app implements the application layer for backsync.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/backsync/internal/engine/rules"
	"go.trai.ch/backsync/internal/engine/walker"
)

// App runs the backsync use cases.
type App struct {
	configLoader ports.ConfigLoader
	engines      ports.IgnoreEngines
	transferer   ports.Transferer
	store        ports.ScanStore
	logger       ports.Logger
	out          io.Writer
	now          func() time.Time
}

// New creates a new App instance writing reports to stdout.
func New(
	loader ports.ConfigLoader,
	engines ports.IgnoreEngines,
	transferer ports.Transferer,
	store ports.ScanStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		engines:      engines,
		transferer:   transferer,
		store:        store,
		logger:       log,
		out:          os.Stdout,
		now:          time.Now,
	}
}

// WithOutput redirects report output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithClock replaces the clock used to stamp scan records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ConfigSource selects where the configuration is read from.
type ConfigSource struct {
	// Path is the YAML configuration file. Ignored when FromEnv is set.
	Path string
	// FromEnv reads BACKSYNC_* environment variables instead of a file.
	FromEnv bool
}

func (a *App) loadConfig(src ConfigSource) (*domain.Config, error) {
	if src.FromEnv {
		return a.configLoader.LoadEnv()
	}
	return a.configLoader.LoadFile(src.Path)
}

// newWalker builds a fresh walker for one traversal of cfg.SrcDir.
func (a *App) newWalker(cfg *domain.Config) (*walker.Walker, error) {
	classifier, err := rules.NewClassifier(cfg.GlobalIgnores, cfg.SizeLimits)
	if err != nil {
		return nil, err
	}

	compiler, err := a.engines.Compiler(cfg.IgnoreEngine)
	if err != nil {
		return nil, err
	}

	return walker.New(classifier, compiler, cfg.IgnoreFile, a.logger), nil
}

// ExcludedOptions configures Excluded.
type ExcludedOptions struct {
	// Patterns prints encoded exclusion patterns instead of absolute paths.
	Patterns bool
}

// Excluded prints every excluded entry of the source tree, one per line.
func (a *App) Excluded(ctx context.Context, src ConfigSource, opts ExcludedOptions) error {
	cfg, err := a.loadConfig(src)
	if err != nil {
		return err
	}

	w, err := a.newWalker(cfg)
	if err != nil {
		return err
	}

	for ex := range walker.Exclusions(cfg.SrcDir, w.Walk(cfg.SrcDir)) {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := ex.Entry.Path
		if opts.Patterns {
			line = ex.Pattern
		}
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}

	return nil
}
