package domain

import "path/filepath"

const (
	// CatalogFileName is the name of the on-disk catalog file inside the
	// containers directory.
	CatalogFileName = "catalog.json"

	// CatalogLockName is the name of the advisory lock file guarding
	// catalog mutations.
	CatalogLockName = "catalog.lock"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "vessel.yaml"

	// CurrentLinkName is the default name of the active-slot symlink.
	CurrentLinkName = "current.sif"

	// CatalogSchema is the catalog file format version written by this
	// build. Readers reject files with a higher schema.
	CatalogSchema = 1

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CatalogPath returns the path of the catalog file for a containers directory.
func CatalogPath(containersDir string) string {
	return filepath.Join(containersDir, CatalogFileName)
}

// CatalogLockPath returns the path of the catalog lock file for a containers
// directory.
func CatalogLockPath(containersDir string) string {
	return filepath.Join(containersDir, CatalogLockName)
}

// DefaultSlotPath returns the default active-slot symlink location for a
// containers directory.
func DefaultSlotPath(containersDir string) string {
	return filepath.Join(containersDir, CurrentLinkName)
}
