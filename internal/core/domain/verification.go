package domain

// CheckStatus is the outcome of a single integrity check.
type CheckStatus string

const (
	// CheckPass means the recomputed fingerprint matches the recorded one.
	CheckPass CheckStatus = "pass"
	// CheckFail means the fingerprint differs or the checked path is missing.
	CheckFail CheckStatus = "fail"
	// CheckSkip means nothing was recorded for this field, which passes
	// vacuously.
	CheckSkip CheckStatus = "skip"
)

// Check is the result of one integrity comparison.
type Check struct {
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail,omitempty"`
}

// OK reports whether the check contributes a pass to the overall result.
// Skipped checks pass vacuously.
func (c Check) OK() bool {
	return c.Status != CheckFail
}

// VerificationResult is the structured outcome of verifying one version
// against its recorded fingerprints. It is computed on demand and never
// persisted.
type VerificationResult struct {
	VersionID string           `json:"version_id"`
	Artifact  Check            `json:"artifact"`
	DefOrigin Check            `json:"def_origin"`
	Locks     map[string]Check `json:"dependency_locks,omitempty"`
	Overall   bool             `json:"overall"`
}

// Finalize recomputes Overall as the logical AND of all individual checks.
func (r *VerificationResult) Finalize() {
	overall := r.Artifact.OK() && r.DefOrigin.OK()
	for _, c := range r.Locks {
		overall = overall && c.OK()
	}
	r.Overall = overall
}
