package list

import (
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/filesystem"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/scanner"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// ListLinksOptions defines the options for the ListLinks command
type ListLinksOptions struct {
	// Config carries the links root
	Config *config.Config

	// BrokenOnly restricts the result to links with missing targets
	BrokenOnly bool

	// FS overrides the filesystem, for tests
	FS types.FS
}

// ListLinksResult holds the current link snapshot, sorted by name
type ListLinksResult struct {
	Links []types.LinkEntry `json:"links"`
}

// ListLinks returns the current set of link entries. A missing links
// directory yields an empty result, not an error.
func ListLinks(opts ListLinksOptions) (*ListLinksResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListLinks").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	entries, err := scanner.ListLinkEntries(fsys, opts.Config.LinksDir)
	if err != nil {
		return nil, err
	}

	if opts.BrokenOnly {
		var broken []types.LinkEntry
		for _, entry := range entries {
			if entry.Validity == types.LinkBroken {
				broken = append(broken, entry)
			}
		}
		entries = broken
	}

	log.Info().Str("command", "ListLinks").Int("linkCount", len(entries)).Msg("Command finished")
	return &ListLinksResult{Links: entries}, nil
}
