package types

// Outcome is the per-item result of one engine operation. No engine
// operation raises for a single item; every failure mode maps onto one
// of these values and the run continues.
type Outcome string

const (
	// OutcomeCreated means the link was created
	OutcomeCreated Outcome = "created"

	// OutcomeAlreadyLinked means a link of that name already existed.
	// Treated as success: re-running add is idempotent.
	OutcomeAlreadyLinked Outcome = "already_linked"

	// OutcomeUnresolved means no usable title could be obtained for the
	// id, either because the lookup failed or because the title
	// sanitized down to nothing
	OutcomeUnresolved Outcome = "unresolved"

	// OutcomeSourceMissing means the mod directory was absent at
	// link-creation time
	OutcomeSourceMissing Outcome = "source_missing"

	// OutcomeCreateFailed means the symlink syscall failed for a reason
	// other than an existing name
	OutcomeCreateFailed Outcome = "create_failed"

	// OutcomeRemoved means the link was removed
	OutcomeRemoved Outcome = "removed"

	// OutcomeNotFound means the requested name does not exist as a
	// symlink. A real file or directory of that name is never touched.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeRemoveFailed means the unlink syscall failed
	OutcomeRemoveFailed Outcome = "remove_failed"

	// OutcomePruned means a broken link was removed
	OutcomePruned Outcome = "pruned"

	// OutcomePruneFailed means a broken link could not be removed
	OutcomePruneFailed Outcome = "prune_failed"
)

// Success reports whether the outcome counts as success for exit-status
// purposes. AlreadyLinked is success by design.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeCreated, OutcomeAlreadyLinked, OutcomeRemoved, OutcomePruned:
		return true
	}
	return false
}

// LinkResult is one (item, outcome) pair from an engine operation
type LinkResult struct {
	// ID is the workshop id, when the operation is id-keyed
	ID string `json:"id,omitempty"`

	// Name is the link name, when one was derived or given
	Name string `json:"name,omitempty"`

	// Target is the link target path, when known
	Target string `json:"target,omitempty"`

	// Outcome classifies what happened
	Outcome Outcome `json:"outcome"`

	// Err carries the underlying reason for failed outcomes
	Err error `json:"-"`
}

// SyncResult is the result of a full reconciliation pass
type SyncResult struct {
	// Results holds one entry per pending id, in ascending id order
	Results []LinkResult `json:"results"`

	// AllLinked is true when the pending set was empty and nothing
	// needed doing
	AllLinked bool `json:"allLinked"`
}

// PruneResult is the result of a broken-link sweep. Links with valid
// targets are omitted entirely, not reported as successes.
type PruneResult struct {
	// Results holds one entry per broken link, in name order
	Results []LinkResult `json:"results"`

	// Pruned counts the links actually removed
	Pruned int `json:"pruned"`
}
