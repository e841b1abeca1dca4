// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/backsync/internal/core/domain"

// ConfigLoader defines the interface for loading the backup configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadFile reads and validates the YAML configuration at path.
	LoadFile(path string) (*domain.Config, error)

	// LoadEnv reads and validates the configuration from environment variables.
	LoadEnv() (*domain.Config, error)
}
