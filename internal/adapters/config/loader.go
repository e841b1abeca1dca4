// Package config provides the configuration loaders for backsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML files and the environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadFile reads a configuration file from the given path and validates it.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var backfile Backfile
	if err := yaml.Unmarshal(data, &backfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.build(&backfile)
}

// build validates the DTO and fills in defaults.
func (l *Loader) build(dto *Backfile) (*domain.Config, error) {
	required := []struct {
		key   string
		value string
	}{
		{"src_dir", dto.SrcDir},
		{"dst_bucket_name", dto.DstBucketName},
		{"app_key_id", dto.AppKeyID},
		{"app_key", dto.AppKey},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, zerr.With(domain.ErrMissingConfigKey, "key", r.key)
		}
	}

	srcDir, err := resolveSource(dto.SrcDir)
	if err != nil {
		return nil, err
	}

	if err := validatePatterns(dto.GlobalIgnores, dto.SizeLimits); err != nil {
		return nil, err
	}

	engine := domain.IgnoreEngine(dto.IgnoreEngine)
	switch engine {
	case "":
		engine = domain.IgnoreEnginePattern
	case domain.IgnoreEnginePattern, domain.IgnoreEngineGit:
	default:
		return nil, zerr.With(domain.ErrUnknownIgnoreEngine, "engine", dto.IgnoreEngine)
	}

	cfg := &domain.Config{
		SrcDir:        srcDir,
		DstBucketName: dto.DstBucketName,
		AppKeyID:      dto.AppKeyID,
		AppKey:        dto.AppKey,
		GlobalIgnores: dto.GlobalIgnores,
		SizeLimits:    dto.SizeLimits,
		IgnoreFile:    valueOr(dto.IgnoreFile, domain.DefaultIgnoreFile),
		IgnoreEngine:  engine,
		StateFile:     valueOr(dto.StateFile, domain.DefaultStateFile),
		Transfer: domain.TransferConfig{
			Command:          valueOr(dto.Transfer.Command, domain.DefaultTransferCommand),
			Threads:          l.positiveOr("transfer.threads", dto.Transfer.Threads, domain.DefaultTransferThreads),
			CompareThreshold: l.positiveOr("transfer.compare_threshold", dto.Transfer.CompareThreshold, domain.DefaultCompareThreshold),
			ExtraArgs:        dto.Transfer.ExtraArgs,
		},
	}

	if strings.ContainsRune(cfg.IgnoreFile, '/') || strings.ContainsRune(cfg.IgnoreFile, filepath.Separator) {
		l.Logger.Warn("ignore_file contains a path separator and will never be found", "ignore_file", cfg.IgnoreFile)
	}

	return cfg, nil
}

func resolveSource(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "src_dir", dir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "src_dir", abs)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrSourceNotDirectory, "src_dir", abs)
	}
	return abs, nil
}

func validatePatterns(globals []string, sizeLimits map[string]string) error {
	for _, expr := range globals {
		if _, err := regexp.Compile(expr); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "global_ignores", expr)
		}
	}
	for expr := range sizeLimits {
		if _, err := regexp.Compile(expr); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "size_limits", expr)
		}
	}
	return nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (l *Loader) positiveOr(key string, value, fallback int) int {
	switch {
	case value > 0:
		return value
	case value < 0:
		l.Logger.Warn("value must be positive, using default", "key", key, "value", value, "default", fallback)
	}
	return fallback
}
