package types

import (
	"path/filepath"
)

// ContentEntry is one digit-named mod directory under the mods root.
// Entries appear and disappear entirely outside a3modlink's control;
// the system only ever observes them.
type ContentEntry struct {
	// ID is the decimal workshop id, exactly as named on disk
	ID string

	// Path is the absolute path to the mod directory
	Path string
}

// LinkValidity classifies the target of a LinkEntry
type LinkValidity string

const (
	// LinkValid means the target exists and is a digit-named directory
	LinkValid LinkValidity = "valid"

	// LinkBroken means the target is missing or unreadable
	LinkBroken LinkValidity = "broken"

	// LinkForeign means the target exists but is not a recognized
	// mod directory. Informational only; never acted on.
	LinkForeign LinkValidity = "foreign"
)

// LinkEntry is one symbolic link under the links root
type LinkEntry struct {
	// Name is the link's filename (the sanitized mod title)
	Name string

	// Target is the link's destination, resolved to an absolute path
	Target string

	// Validity classifies the target
	Validity LinkValidity
}

// TargetID returns the trailing path segment of the link's target,
// which by convention is the workshop id the link was created for.
func (l LinkEntry) TargetID() string {
	return filepath.Base(l.Target)
}
