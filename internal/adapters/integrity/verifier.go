// Package integrity computes and compares content fingerprints for container
// artifacts, definition files, and dependency lock files.
package integrity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier implements ports.Verifier using XXHash content fingerprints.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ComputeFileHash computes the XXHash of a file's content, formatted as a
// fixed-width hex string. The result depends only on content.
func (v *Verifier) ComputeFileHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrFileHashFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(errors.Join(domain.ErrFileHashFailed, err), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Verify recomputes fingerprints for the version's artifact, definition
// origin, and lock files and compares them against the recorded values.
// Every outcome is a structured check; a missing path fails its check
// instead of aborting the run.
func (v *Verifier) Verify(ver domain.Version) *domain.VerificationResult {
	result := &domain.VerificationResult{
		VersionID: ver.ID,
		Artifact:  v.checkFile(ver.ArtifactPath, ver.ArtifactHash),
		DefOrigin: v.checkDefOrigin(ver),
	}

	if len(ver.LockHashes) > 0 {
		result.Locks = make(map[string]domain.Check, len(ver.LockHashes))
		lockDir := filepath.Dir(ver.ArtifactPath)
		for name, recorded := range ver.LockHashes {
			result.Locks[name] = v.checkFile(filepath.Join(lockDir, name), recorded)
		}
	}

	result.Finalize()
	return result
}

// VerifyDefOrigin compares only the definition file's current fingerprint
// against the recorded origin hash. The artifact and lock files are left
// untouched.
func (v *Verifier) VerifyDefOrigin(ver domain.Version) domain.Check {
	return v.checkDefOrigin(ver)
}

func (v *Verifier) checkDefOrigin(ver domain.Version) domain.Check {
	if ver.DefPath == "" && ver.DefOriginHash == "" {
		return domain.Check{Status: domain.CheckSkip, Detail: "no definition recorded"}
	}
	if ver.DefPath == "" {
		return domain.Check{Status: domain.CheckFail, Detail: "definition hash recorded without a path"}
	}
	return v.checkFile(ver.DefPath, ver.DefOriginHash)
}

// checkFile compares a file's current fingerprint against a recorded one.
func (v *Verifier) checkFile(path, recorded string) domain.Check {
	if recorded == "" {
		return domain.Check{Status: domain.CheckSkip, Detail: "no hash recorded"}
	}

	if _, err := os.Stat(path); err != nil {
		return domain.Check{
			Status: domain.CheckFail,
			Detail: fmt.Sprintf("missing: %s", path),
		}
	}

	current, err := v.ComputeFileHash(path)
	if err != nil {
		return domain.Check{
			Status: domain.CheckFail,
			Detail: fmt.Sprintf("unreadable: %s", path),
		}
	}

	if current != recorded {
		return domain.Check{
			Status: domain.CheckFail,
			Detail: fmt.Sprintf("hash mismatch: current=%s recorded=%s", current, recorded),
		}
	}

	return domain.Check{Status: domain.CheckPass}
}
