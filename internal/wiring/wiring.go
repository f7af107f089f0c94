// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.scitex.ch/vessel/internal/adapters/catalog"
	_ "go.scitex.ch/vessel/internal/adapters/config"
	_ "go.scitex.ch/vessel/internal/adapters/dockerstatus"
	_ "go.scitex.ch/vessel/internal/adapters/flock"
	_ "go.scitex.ch/vessel/internal/adapters/hoststatus"
	_ "go.scitex.ch/vessel/internal/adapters/integrity"
	_ "go.scitex.ch/vessel/internal/adapters/logger"
	_ "go.scitex.ch/vessel/internal/adapters/probe"
	_ "go.scitex.ch/vessel/internal/adapters/slot"
	// Register app and engine nodes.
	_ "go.scitex.ch/vessel/internal/app"
	_ "go.scitex.ch/vessel/internal/engine/lifecycle"
	_ "go.scitex.ch/vessel/internal/engine/status"
)
