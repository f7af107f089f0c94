package ports

import "context"

// Probe runs a minimal smoke execution of an artifact before a switch
// commits. A probe timeout is treated identically to a probe failure.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type Probe interface {
	// Run executes the smoke check against the artifact at the given path.
	// A nil return means the artifact is runnable.
	Run(ctx context.Context, artifactPath string) error
}
