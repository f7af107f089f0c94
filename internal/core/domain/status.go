package domain

// ExternalState classifies the health of an external collaborator.
type ExternalState string

const (
	// ExternalOK means the collaborator answered and is healthy.
	ExternalOK ExternalState = "ok"
	// ExternalDegraded means the collaborator answered but reported problems.
	ExternalDegraded ExternalState = "degraded"
	// ExternalUnknown means the collaborator was unreachable. Version state
	// is still reported; one unavailable collaborator never hides it.
	ExternalUnknown ExternalState = "unknown"
)

// ExternalStatus is the health snapshot of one external collaborator.
type ExternalStatus struct {
	Name   string        `json:"name"`
	State  ExternalState `json:"state"`
	Detail string        `json:"detail,omitempty"`
}

// StatusReport is the read-only dashboard snapshot: catalog state composed
// with collaborator health.
type StatusReport struct {
	Active       *Version `json:"active,omitempty"`
	Previous     *Version `json:"previous,omitempty"`
	VersionCount int      `json:"version_count"`

	// DefDrift reports whether the active version's definition file still
	// matches its recorded origin hash. Nil when no version is active.
	DefDrift *Check `json:"def_drift,omitempty"`

	External []ExternalStatus `json:"external_statuses"`
}
