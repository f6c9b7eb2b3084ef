// Package style renders link snapshots and reconciliation outcomes
// for the terminal.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// Styles for the different outcome classes
var (
	successStyle = pterm.NewStyle(pterm.FgGreen)
	failureStyle = pterm.NewStyle(pterm.FgRed)
	mutedStyle   = pterm.NewStyle(pterm.FgGray)
	brokenStyle  = pterm.NewStyle(pterm.FgYellow)
)

// outcomeVerbs maps each outcome to the phrase shown to the user
var outcomeVerbs = map[types.Outcome]string{
	types.OutcomeCreated:       "linked",
	types.OutcomeAlreadyLinked: "already linked",
	types.OutcomeUnresolved:    "unable to get title",
	types.OutcomeSourceMissing: "mod directory missing",
	types.OutcomeCreateFailed:  "unable to create link",
	types.OutcomeRemoved:       "unlinked",
	types.OutcomeNotFound:      "no such link",
	types.OutcomeRemoveFailed:  "unable to remove link",
	types.OutcomePruned:        "pruned",
	types.OutcomePruneFailed:   "unable to prune",
}

// RenderLinkList renders the link snapshot as a two-column table
// sorted by name, with broken and foreign targets marked
func RenderLinkList(entries []types.LinkEntry) string {
	if len(entries) == 0 {
		return mutedStyle.Sprint("No links found")
	}

	width := len("Title")
	for _, entry := range entries {
		if len(entry.Name) > width {
			width = len(entry.Name)
		}
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%-*s  %s\n", width, "Title", "Actual Path"))
	result.WriteString(strings.Repeat("=", width+2+len("Actual Path")) + "\n")

	for _, entry := range entries {
		line := fmt.Sprintf("%-*s  %s", width, entry.Name, entry.Target)
		switch entry.Validity {
		case types.LinkBroken:
			line = brokenStyle.Sprint(line + "  (broken)")
		case types.LinkForeign:
			line = mutedStyle.Sprint(line + "  (foreign)")
		}
		result.WriteString(line + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResult renders one outcome line. Failed items carry the
// underlying reason; nothing here ever prints a stack trace.
func RenderResult(r types.LinkResult) string {
	verb, ok := outcomeVerbs[r.Outcome]
	if !ok {
		verb = string(r.Outcome)
	}

	item := r.Name
	if item == "" {
		item = r.ID
	} else if r.ID != "" {
		item = fmt.Sprintf("%s (%s)", r.Name, r.ID)
	}

	if r.Outcome.Success() {
		return fmt.Sprintf("%s %s", successStyle.Sprint("✓"), fmt.Sprintf("%s: %s", item, verb))
	}

	line := fmt.Sprintf("%s %s: %s", failureStyle.Sprint("✗"), item, verb)
	if r.Err != nil {
		line += mutedStyle.Sprintf(" (%v)", r.Err)
	}
	return line
}

// RenderResults renders one line per item
func RenderResults(results []types.LinkResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, RenderResult(r))
	}
	return strings.Join(lines, "\n")
}
