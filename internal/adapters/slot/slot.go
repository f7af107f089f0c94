// Package slot maintains the stable deployment symlink that collaborators
// resolve to the active container artifact.
package slot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
)

var _ ports.SlotUpdater = (*Updater)(nil)

// Updater repoints a symlink at the deployed artifact. The update is
// atomic: a temporary link is created next to the slot and renamed over it,
// so readers never observe a missing or half-written link.
type Updater struct {
	path string
}

// NewUpdater creates a slot updater for the given symlink path.
func NewUpdater(path string) *Updater {
	return &Updater{path: path}
}

// Path returns the slot symlink location.
func (u *Updater) Path() string {
	return u.path
}

// Update points the slot at artifactPath, replacing any previous target.
func (u *Updater) Update(artifactPath string) error {
	dir := filepath.Dir(u.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrSlotUpdateFailed, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp", filepath.Base(u.path)))
	_ = os.Remove(tmp)
	if err := os.Symlink(artifactPath, tmp); err != nil {
		return errors.Join(domain.ErrSlotUpdateFailed, err)
	}
	if err := os.Rename(tmp, u.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Join(domain.ErrSlotUpdateFailed, err)
	}
	return nil
}
