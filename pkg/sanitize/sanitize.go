// Package sanitize turns arbitrary workshop titles into
// filesystem-safe link names.
package sanitize

import (
	"regexp"
)

var (
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// Name converts a raw display string into a filesystem-safe name.
// Every character outside [A-Za-z0-9_] becomes an underscore, and runs
// of underscores collapse to one. The empty string passes through
// unchanged, and so does a name that sanitizes to pure underscores:
// rejecting degenerate results is the caller's job.
//
// Name is pure and idempotent: Name(Name(s)) == Name(s).
func Name(raw string) string {
	if raw == "" {
		return raw
	}

	safe := unsafeChars.ReplaceAllString(raw, "_")
	return underscoreRuns.ReplaceAllString(safe, "_")
}
