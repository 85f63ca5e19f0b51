// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pin/internal/adapters/config"
	_ "go.trai.ch/pin/internal/adapters/git"
	_ "go.trai.ch/pin/internal/adapters/logger"
	_ "go.trai.ch/pin/internal/adapters/shell"
	_ "go.trai.ch/pin/internal/adapters/telemetry"
	_ "go.trai.ch/pin/internal/adapters/vendor"
	// Register app and engine nodes.
	_ "go.trai.ch/pin/internal/app"
	_ "go.trai.ch/pin/internal/engine/resolver"
)
