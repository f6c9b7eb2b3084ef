package unlink

import (
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/filesystem"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/reconcile"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// UnlinkModsOptions defines the options for the UnlinkMods command
type UnlinkModsOptions struct {
	// Config carries the links root
	Config *config.Config

	// Names are the link names to remove
	Names []string

	// FS overrides the filesystem, for tests
	FS types.FS
}

// UnlinkResult holds one outcome per requested name, in input order
type UnlinkResult struct {
	Results []types.LinkResult `json:"results"`
}

// UnlinkMods removes the named links. Names that do not exist, or that
// name anything other than a symlink, come back OutcomeNotFound; a
// real file or directory is never touched.
func UnlinkMods(opts UnlinkModsOptions) (*UnlinkResult, error) {
	log := logging.GetLogger("commands.unlink")
	log.Debug().Str("command", "UnlinkMods").Strs("names", opts.Names).Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// The resolver is never consulted on removal
	engine := reconcile.New(fsys, nil, reconcile.Roots{
		ModsDir:  opts.Config.ModsDir,
		LinksDir: opts.Config.LinksDir,
	})

	results := engine.RemoveLinks(opts.Names)

	log.Info().Str("command", "UnlinkMods").Int("processed", len(results)).Msg("Command finished")
	return &UnlinkResult{Results: results}, nil
}
