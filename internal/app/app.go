// Package app implements the application layer for vessel.
package app

import (
	"context"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.scitex.ch/vessel/internal/engine/lifecycle"
	"go.scitex.ch/vessel/internal/engine/status"
)

// App is the facade the CLI and MCP transports drive. It delegates to the
// lifecycle manager and status aggregator and fills in configured defaults.
type App struct {
	lifecycle *lifecycle.Manager
	status    *status.Aggregator
	logger    ports.Logger
	config    *domain.Config
}

// New creates a new App instance.
func New(
	mgr *lifecycle.Manager,
	agg *status.Aggregator,
	log ports.Logger,
	cfg *domain.Config,
) *App {
	return &App{
		lifecycle: mgr,
		status:    agg,
		logger:    log,
		config:    cfg,
	}
}

// Config returns the resolved configuration.
func (a *App) Config() *domain.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() ports.Logger {
	return a.logger
}

// List returns the current catalog.
func (a *App) List(ctx context.Context) (*domain.Catalog, error) {
	return a.lifecycle.List(ctx)
}

// Register records a new version in the catalog.
func (a *App) Register(ctx context.Context, params lifecycle.RegisterParams) (domain.Version, error) {
	return a.lifecycle.Register(ctx, params)
}

// Switch makes the target version active after probing it.
func (a *App) Switch(ctx context.Context, id string) (domain.SwitchResult, error) {
	return a.lifecycle.Switch(ctx, id)
}

// Rollback swaps the active and previous versions.
func (a *App) Rollback(ctx context.Context) (domain.SwitchResult, error) {
	return a.lifecycle.Rollback(ctx)
}

// Deploy switches to the target version and repoints the active slot.
func (a *App) Deploy(ctx context.Context, id string) (domain.DeployResult, error) {
	return a.lifecycle.Deploy(ctx, id)
}

// Cleanup removes old versions. A negative retain means the configured
// retention count.
func (a *App) Cleanup(ctx context.Context, retain int) (domain.CleanupReport, error) {
	if retain < 0 {
		retain = a.config.RetainCount
	}
	return a.lifecycle.Cleanup(ctx, retain)
}

// Verify checks the integrity of the given version, or of the active
// version when id is empty.
func (a *App) Verify(ctx context.Context, id string) (*domain.VerificationResult, error) {
	return a.lifecycle.Verify(ctx, id)
}

// Status assembles the current status report.
func (a *App) Status(ctx context.Context) (*domain.StatusReport, error) {
	return a.status.Report(ctx)
}
