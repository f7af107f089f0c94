package domain

// SwitchResult reports the catalog pointers after a switch.
type SwitchResult struct {
	// Active is the id now active.
	Active string `json:"active"`
	// Previous is the id recorded as previous, or empty.
	Previous string `json:"previous,omitempty"`
	// Changed is false when the target was already active and the switch
	// was a no-op.
	Changed bool `json:"changed"`
}

// DeployResult reports a switch that also updated the active slot.
type DeployResult struct {
	SwitchResult
	// SlotPath is the symlink consumed by the execution environment.
	SlotPath string `json:"slot_path"`
}

// CleanupOutcome reports the fate of one version considered for removal.
type CleanupOutcome struct {
	ID string `json:"id"`
	// Removed is true when both the artifact and the catalog entry are gone.
	Removed bool `json:"removed"`
	// Reason explains a retained version: why removal was skipped or failed.
	Reason string `json:"reason,omitempty"`
}

// CleanupReport is the per-version outcome list of a cleanup run. Cleanup is
// best effort; a failed removal is reported here rather than aborting the run.
type CleanupReport struct {
	Outcomes []CleanupOutcome `json:"outcomes"`
}

// RemovedIDs returns the ids that were actually removed.
func (r CleanupReport) RemovedIDs() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.Removed {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Failed returns the outcomes for versions that were doomed but could not be
// removed.
func (r CleanupReport) Failed() []CleanupOutcome {
	var failed []CleanupOutcome
	for _, o := range r.Outcomes {
		if !o.Removed && o.Reason != "" {
			failed = append(failed, o)
		}
	}
	return failed
}
