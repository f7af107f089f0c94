// Package ports defines the core interfaces for the application.
package ports

import "go.scitex.ch/vessel/internal/core/domain"

// CatalogStore persists the version catalog. It is the only writer of the
// on-disk catalog file.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CatalogStore interface {
	// Load reads the catalog file. An absent file is a valid first-run
	// state and yields an empty catalog.
	Load() (*domain.Catalog, error)

	// Save writes the catalog atomically (temp file then rename) so a
	// crash mid-write never corrupts the file the next read sees.
	Save(catalog *domain.Catalog) error

	// Register adds a new version and persists. It fails with
	// domain.ErrDuplicateVersion if the id already exists.
	Register(v domain.Version) error

	// Remove deletes a version entry and persists. It fails with
	// domain.ErrUnknownVersion if the id is absent and with
	// domain.ErrActiveVersionRemoval if the id is the active version.
	Remove(id string) error
}
