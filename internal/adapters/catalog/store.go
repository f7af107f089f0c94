// Package catalog implements the on-disk version catalog store.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogStore = (*Store)(nil)

// Store implements ports.CatalogStore as a single JSON file under the
// containers directory.
type Store struct {
	dir string
}

// NewStore creates a catalog store rooted at the given containers directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the catalog file. An absent file yields an empty catalog:
// first run is a valid state, not an error.
func (s *Store) Load() (*domain.Catalog, error) {
	data, err := os.ReadFile(domain.CatalogPath(s.dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCatalog(), nil
		}
		return nil, errors.Join(domain.ErrCatalogReadFailed, err)
	}

	var cat domain.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.Join(domain.ErrCatalogReadFailed, err)
	}

	if cat.Schema > domain.CatalogSchema {
		return nil, zerr.With(domain.ErrUnsupportedSchema, "schema", fmt.Sprintf("%d", cat.Schema))
	}
	if cat.Versions == nil {
		cat.Versions = make(map[string]domain.Version)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Save writes the catalog atomically: marshal, write to a temp file in the
// same directory, then rename over the final path.
func (s *Store) Save(cat *domain.Catalog) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	cat.Schema = domain.CatalogSchema

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCatalogWriteFailed, err)
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCatalogWriteFailed, err)
	}

	finalPath := domain.CatalogPath(s.dir)
	tempPath := finalPath + ".tmp"
	if err := os.WriteFile(tempPath, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrCatalogWriteFailed, err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Join(domain.ErrCatalogWriteFailed, err)
	}

	return nil
}

// Register adds a new version and persists the catalog.
func (s *Store) Register(v domain.Version) error {
	cat, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := cat.Versions[v.ID]; exists {
		return zerr.With(domain.ErrDuplicateVersion, "version", v.ID)
	}

	cat.Versions[v.ID] = v
	return s.Save(cat)
}

// Remove deletes a version entry and persists the catalog. Removing the
// active version is refused so the active pointer is never orphaned. A
// removed previous version clears the previous pointer.
func (s *Store) Remove(id string) error {
	cat, err := s.Load()
	if err != nil {
		return err
	}

	if _, ok := cat.Versions[id]; !ok {
		return zerr.With(domain.ErrUnknownVersion, "version", id)
	}
	if cat.Active == id {
		return zerr.With(domain.ErrActiveVersionRemoval, "version", id)
	}

	delete(cat.Versions, id)
	if cat.Previous == id {
		cat.Previous = ""
	}
	return s.Save(cat)
}
