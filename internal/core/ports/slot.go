package ports

// SlotUpdater points the active-slot reference consumed by the execution
// environment at an artifact. Updates are atomic and idempotent.
//
//go:generate mockgen -source=slot.go -destination=mocks/mock_slot.go -package=mocks
type SlotUpdater interface {
	// Update atomically repoints the slot at the artifact.
	Update(artifactPath string) error

	// Path returns the slot location.
	Path() string
}
