// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/backsync/internal/adapters/config"
	_ "go.trai.ch/backsync/internal/adapters/history"
	_ "go.trai.ch/backsync/internal/adapters/ignore"
	_ "go.trai.ch/backsync/internal/adapters/logger"
	_ "go.trai.ch/backsync/internal/adapters/transfer"
	// Register app nodes.
	_ "go.trai.ch/backsync/internal/app"
)
