package ports

import (
	"context"

	"go.scitex.ch/vessel/internal/core/domain"
)

// StatusProvider reports the health of one external collaborator for the
// status dashboard. Providers must not mutate any state.
//
//go:generate mockgen -source=status.go -destination=mocks/mock_status.go -package=mocks
type StatusProvider interface {
	// Name identifies the collaborator in the dashboard.
	Name() string

	// Check returns the collaborator's health. An unreachable collaborator
	// is reported as domain.ExternalUnknown, never as an error.
	Check(ctx context.Context) domain.ExternalStatus
}
