package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownVersion is returned when a version id is not present in the catalog.
	ErrUnknownVersion = zerr.New("unknown version")

	// ErrDuplicateVersion is returned when registering a version whose id already exists.
	ErrDuplicateVersion = zerr.New("version already registered")

	// ErrActiveVersionRemoval is returned when a removal would orphan the active pointer.
	ErrActiveVersionRemoval = zerr.New("cannot remove the active version")

	// ErrNoPreviousVersion is returned when rollback is requested but no previous version is recorded.
	ErrNoPreviousVersion = zerr.New("no previous version to roll back to")

	// ErrSwitchVerification is returned when the smoke probe rejects the target artifact.
	ErrSwitchVerification = zerr.New("switch verification failed")

	// ErrConcurrentOperation is returned when the catalog lock cannot be acquired in time.
	ErrConcurrentOperation = zerr.New("another operation holds the catalog lock")

	// ErrCatalogReadFailed is returned when the catalog file cannot be read or decoded.
	ErrCatalogReadFailed = zerr.New("failed to read catalog")

	// ErrCatalogWriteFailed is returned when the catalog file cannot be persisted.
	ErrCatalogWriteFailed = zerr.New("failed to write catalog")

	// ErrCatalogInvariant is returned when a catalog violates its pointer invariants.
	ErrCatalogInvariant = zerr.New("catalog pointer references unknown version")

	// ErrUnsupportedSchema is returned when the catalog file was written by a newer build.
	ErrUnsupportedSchema = zerr.New("catalog schema is newer than this build supports")

	// ErrSlotUpdateFailed is returned when the active-slot symlink cannot be updated.
	ErrSlotUpdateFailed = zerr.New("failed to update active slot")

	// ErrArtifactMissing is returned when an operation requires an artifact file that does not exist.
	ErrArtifactMissing = zerr.New("artifact not found")

	// ErrProbeUnavailable is returned when no container runtime is available to probe with.
	ErrProbeUnavailable = zerr.New("no container runtime found for smoke probe")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
