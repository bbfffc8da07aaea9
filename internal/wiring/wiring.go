// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pacdef/internal/adapters/backend"
	_ "go.trai.ch/pacdef/internal/adapters/config"
	_ "go.trai.ch/pacdef/internal/adapters/editor"
	_ "go.trai.ch/pacdef/internal/adapters/groupfile"
	_ "go.trai.ch/pacdef/internal/adapters/linear"
	_ "go.trai.ch/pacdef/internal/adapters/logger"
	_ "go.trai.ch/pacdef/internal/adapters/prompt"
	_ "go.trai.ch/pacdef/internal/adapters/shell"
	_ "go.trai.ch/pacdef/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/pacdef/internal/app"
)
