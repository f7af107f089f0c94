// Package lifecycle orchestrates version switching, rollback, deployment,
// registration, cleanup, and verification against the catalog.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager coordinates all catalog mutations. Every mutating operation runs
// under the exclusive catalog lock; reads go straight to the store.
type Manager struct {
	store    ports.CatalogStore
	verifier ports.Verifier
	probe    ports.Probe
	slot     ports.SlotUpdater
	locker   ports.CatalogLocker
	log      ports.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewManager creates a lifecycle manager.
func NewManager(
	store ports.CatalogStore,
	verifier ports.Verifier,
	probe ports.Probe,
	slot ports.SlotUpdater,
	locker ports.CatalogLocker,
	log ports.Logger,
) *Manager {
	return &Manager{
		store:    store,
		verifier: verifier,
		probe:    probe,
		slot:     slot,
		locker:   locker,
		log:      log,
		now:      time.Now,
	}
}

// List returns the current catalog.
func (m *Manager) List(_ context.Context) (*domain.Catalog, error) {
	return m.store.Load()
}

// RegisterParams describes a version to record in the catalog.
type RegisterParams struct {
	// ID is the semantic version string.
	ID string
	// ArtifactPath locates the built image.
	ArtifactPath string
	// DefPath locates the definition file the image was built from. May be
	// empty for artifacts whose origin is not tracked.
	DefPath string
	// LockFiles are dependency lock files to fingerprint, located next to
	// the artifact.
	LockFiles []string
}

// Register fingerprints the artifact and its build inputs and records the
// version in the catalog.
func (m *Manager) Register(ctx context.Context, params RegisterParams) (domain.Version, error) {
	release, err := m.locker.Acquire(ctx)
	if err != nil {
		return domain.Version{}, err
	}
	defer release()

	artifactHash, err := m.verifier.ComputeFileHash(params.ArtifactPath)
	if err != nil {
		return domain.Version{}, err
	}

	v := domain.Version{
		ID:           params.ID,
		ArtifactPath: params.ArtifactPath,
		CreatedAt:    m.now().UTC(),
		ArtifactHash: artifactHash,
	}

	if params.DefPath != "" {
		defHash, err := m.verifier.ComputeFileHash(params.DefPath)
		if err != nil {
			return domain.Version{}, err
		}
		v.DefPath = params.DefPath
		v.DefOriginHash = defHash
	}

	lockDir := filepath.Dir(params.ArtifactPath)
	for _, name := range params.LockFiles {
		hash, err := m.verifier.ComputeFileHash(filepath.Join(lockDir, name))
		if err != nil {
			return domain.Version{}, err
		}
		if v.LockHashes == nil {
			v.LockHashes = make(map[string]string)
		}
		v.LockHashes[name] = hash
	}

	if err := m.store.Register(v); err != nil {
		return domain.Version{}, err
	}

	m.log.Info(fmt.Sprintf("registered version %s", v.ID))
	return v, nil
}

// Switch makes the target version active. The target is probed before
// anything is committed; a failed or timed-out probe leaves the catalog
// untouched. Switching to the already-active version is a no-op.
func (m *Manager) Switch(ctx context.Context, id string) (domain.SwitchResult, error) {
	release, err := m.locker.Acquire(ctx)
	if err != nil {
		return domain.SwitchResult{}, err
	}
	defer release()

	return m.switchLocked(ctx, id)
}

func (m *Manager) switchLocked(ctx context.Context, id string) (domain.SwitchResult, error) {
	catalog, err := m.store.Load()
	if err != nil {
		return domain.SwitchResult{}, err
	}

	target, ok := catalog.Get(id)
	if !ok {
		return domain.SwitchResult{}, zerr.With(domain.ErrUnknownVersion, "version", id)
	}

	if catalog.Active == id {
		return domain.SwitchResult{
			Active:   catalog.Active,
			Previous: catalog.Previous,
			Changed:  false,
		}, nil
	}

	if err := m.probe.Run(ctx, target.ArtifactPath); err != nil {
		return domain.SwitchResult{}, errors.Join(domain.ErrSwitchVerification, err)
	}

	if catalog.Active != "" {
		catalog.Previous = catalog.Active
	}
	catalog.Active = id

	if err := m.store.Save(catalog); err != nil {
		return domain.SwitchResult{}, err
	}

	m.log.Info(fmt.Sprintf("switched active version to %s", id))
	return domain.SwitchResult{
		Active:   catalog.Active,
		Previous: catalog.Previous,
		Changed:  true,
	}, nil
}

// Rollback swaps the active and previous pointers. It is a single-step undo:
// two consecutive rollbacks return to the starting state, and a rollback
// with no previous version fails.
func (m *Manager) Rollback(ctx context.Context) (domain.SwitchResult, error) {
	release, err := m.locker.Acquire(ctx)
	if err != nil {
		return domain.SwitchResult{}, err
	}
	defer release()

	catalog, err := m.store.Load()
	if err != nil {
		return domain.SwitchResult{}, err
	}

	if catalog.Previous == "" {
		return domain.SwitchResult{}, domain.ErrNoPreviousVersion
	}

	catalog.Active, catalog.Previous = catalog.Previous, catalog.Active

	if err := m.store.Save(catalog); err != nil {
		return domain.SwitchResult{}, err
	}

	m.log.Info(fmt.Sprintf("rolled back to version %s", catalog.Active))
	return domain.SwitchResult{
		Active:   catalog.Active,
		Previous: catalog.Previous,
		Changed:  true,
	}, nil
}

// Deploy switches to the target version and repoints the active slot at its
// artifact. The switch commits first; a slot failure afterwards is surfaced
// but does not undo the switch, since repeating the deploy repairs the slot.
func (m *Manager) Deploy(ctx context.Context, id string) (domain.DeployResult, error) {
	release, err := m.locker.Acquire(ctx)
	if err != nil {
		return domain.DeployResult{}, err
	}
	defer release()

	sw, err := m.switchLocked(ctx, id)
	if err != nil {
		return domain.DeployResult{}, err
	}

	catalog, err := m.store.Load()
	if err != nil {
		return domain.DeployResult{SwitchResult: sw}, err
	}
	active, ok := catalog.ActiveVersion()
	if !ok {
		return domain.DeployResult{SwitchResult: sw}, zerr.With(domain.ErrUnknownVersion, "version", catalog.Active)
	}

	result := domain.DeployResult{SwitchResult: sw, SlotPath: m.slot.Path()}
	if err := m.slot.Update(active.ArtifactPath); err != nil {
		return result, err
	}

	m.log.Info(fmt.Sprintf("deployed version %s to %s", id, m.slot.Path()))
	return result, nil
}

// Cleanup removes old versions, keeping the retain most recent. The active
// and previous versions are always kept regardless of age or count. Removal
// is best effort and two-phase per version: the artifact goes first, the
// catalog entry only after, so a failed artifact removal never leaves a
// catalog entry pointing at nothing that was ours to delete.
func (m *Manager) Cleanup(ctx context.Context, retain int) (domain.CleanupReport, error) {
	release, err := m.locker.Acquire(ctx)
	if err != nil {
		return domain.CleanupReport{}, err
	}
	defer release()

	catalog, err := m.store.Load()
	if err != nil {
		return domain.CleanupReport{}, err
	}

	if retain < 0 {
		retain = 0
	}

	var report domain.CleanupReport
	for i, v := range catalog.Sorted() {
		if v.ID == catalog.Active || v.ID == catalog.Previous {
			continue
		}
		if i < retain {
			continue
		}

		outcome := domain.CleanupOutcome{ID: v.ID}
		if err := m.removeArtifact(v.ArtifactPath); err != nil {
			outcome.Reason = "artifact removal failed: " + err.Error()
			m.log.Warn(fmt.Sprintf("cleanup kept %s: %s", v.ID, outcome.Reason))
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}
		if err := m.store.Remove(v.ID); err != nil {
			outcome.Reason = "catalog removal failed: " + err.Error()
			m.log.Warn(fmt.Sprintf("cleanup kept entry for %s: %s", v.ID, outcome.Reason))
			report.Outcomes = append(report.Outcomes, outcome)
			continue
		}

		outcome.Removed = true
		report.Outcomes = append(report.Outcomes, outcome)
	}

	if n := len(report.RemovedIDs()); n > 0 {
		m.log.Info(fmt.Sprintf("cleanup removed %d versions", n))
	}

	return report, nil
}

// removeArtifact deletes the artifact file. An already-absent artifact is
// not an error; the catalog entry is still stale and should go.
func (m *Manager) removeArtifact(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Verify recomputes the integrity fingerprints of the given version, or of
// the active version when id is empty.
func (m *Manager) Verify(_ context.Context, id string) (*domain.VerificationResult, error) {
	catalog, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	if id == "" {
		id = catalog.Active
		if id == "" {
			return nil, zerr.Wrap(domain.ErrUnknownVersion, "no active version to verify")
		}
	}

	v, ok := catalog.Get(id)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownVersion, "version", id)
	}

	return m.verifier.Verify(v), nil
}
