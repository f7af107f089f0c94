package ports

import "go.scitex.ch/vessel/internal/core/domain"

// Verifier computes and compares integrity fingerprints.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// ComputeFileHash returns the content fingerprint of a file. The hash
	// depends only on content, never on filesystem metadata.
	ComputeFileHash(path string) (string, error)

	// Verify recomputes fingerprints for the version's artifact, definition
	// origin, and recorded lock files at their current on-disk locations
	// and compares them against the values recorded at registration.
	// Missing paths are reported as failed checks; Verify always produces
	// a structured result and never aborts partway.
	Verify(v domain.Version) *domain.VerificationResult

	// VerifyDefOrigin compares only the definition file against the hash
	// recorded at registration. It never reads the artifact or lock files,
	// so it is safe to call on every status refresh.
	VerifyDefOrigin(v domain.Version) domain.Check
}
