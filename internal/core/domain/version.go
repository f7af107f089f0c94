// Package domain defines the core types of the container version lifecycle:
// versions, the catalog that tracks them, and the derived verification and
// status reports.
package domain

import (
	"sort"
	"time"

	"go.trai.ch/zerr"
)

// Version identifies one buildable, runnable container artifact. A Version is
// immutable once recorded; only cleanup removes it from the catalog.
type Version struct {
	// ID is the semantic version string, unique within a catalog.
	ID string `json:"id"`

	// ArtifactPath is the filesystem location of the built image.
	ArtifactPath string `json:"artifact_path"`

	// CreatedAt is the build completion time.
	CreatedAt time.Time `json:"created_at"`

	// ArtifactHash is the content fingerprint of the artifact, captured at
	// registration.
	ArtifactHash string `json:"artifact_hash,omitempty"`

	// DefPath is the location of the definition file the artifact was built
	// from. Verification re-reads it from here.
	DefPath string `json:"def_path,omitempty"`

	// DefOriginHash is the content fingerprint of the definition file,
	// captured at registration.
	DefOriginHash string `json:"def_origin_hash,omitempty"`

	// LockHashes maps dependency lock-file names to their content
	// fingerprints, captured at registration. Lock files live next to the
	// artifact.
	LockHashes map[string]string `json:"dependency_lock_hashes,omitempty"`
}

// Catalog is the full set of known versions plus the active and previous
// pointers. It is the single source of truth for what is live.
type Catalog struct {
	// Schema is the file format version. Unknown fields in older files are
	// ignored on read; a schema newer than CatalogSchema is rejected.
	Schema int `json:"schema"`

	// Versions holds all known versions keyed by id.
	Versions map[string]Version `json:"versions"`

	// Active is the id of the currently active version, or empty.
	Active string `json:"active,omitempty"`

	// Previous is the id of the version that was active before the last
	// successful switch, or empty.
	Previous string `json:"previous,omitempty"`
}

// NewCatalog returns an empty catalog at the current schema.
func NewCatalog() *Catalog {
	return &Catalog{
		Schema:   CatalogSchema,
		Versions: make(map[string]Version),
	}
}

// Get returns the version with the given id.
func (c *Catalog) Get(id string) (Version, bool) {
	v, ok := c.Versions[id]
	return v, ok
}

// ActiveVersion returns the active version, if one is set.
func (c *Catalog) ActiveVersion() (Version, bool) {
	if c.Active == "" {
		return Version{}, false
	}
	return c.Get(c.Active)
}

// PreviousVersion returns the previous version, if one is set.
func (c *Catalog) PreviousVersion() (Version, bool) {
	if c.Previous == "" {
		return Version{}, false
	}
	return c.Get(c.Previous)
}

// Sorted returns all versions ordered by creation time, most recent first.
// Ties are broken by id so the order is deterministic.
func (c *Catalog) Sorted() []Version {
	versions := make([]Version, 0, len(c.Versions))
	for _, v := range c.Versions {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		if !versions[i].CreatedAt.Equal(versions[j].CreatedAt) {
			return versions[i].CreatedAt.After(versions[j].CreatedAt)
		}
		return versions[i].ID > versions[j].ID
	})
	return versions
}

// Validate checks the catalog pointer invariants: active and previous, when
// set, must reference ids present in Versions.
func (c *Catalog) Validate() error {
	if c.Active != "" {
		if _, ok := c.Versions[c.Active]; !ok {
			return zerr.With(ErrCatalogInvariant, "active", c.Active)
		}
	}
	if c.Previous != "" {
		if _, ok := c.Versions[c.Previous]; !ok {
			return zerr.With(ErrCatalogInvariant, "previous", c.Previous)
		}
	}
	return nil
}
