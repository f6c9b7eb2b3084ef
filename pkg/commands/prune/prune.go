package prune

import (
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/filesystem"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/reconcile"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// PruneLinksOptions defines the options for the PruneLinks command
type PruneLinksOptions struct {
	// Config carries the links root
	Config *config.Config

	// FS overrides the filesystem, for tests
	FS types.FS
}

// PruneLinks removes every link whose target no longer exists. A
// missing links directory is an empty sweep, not an error.
func PruneLinks(opts PruneLinksOptions) (*types.PruneResult, error) {
	log := logging.GetLogger("commands.prune")
	log.Debug().Str("command", "PruneLinks").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	engine := reconcile.New(fsys, nil, reconcile.Roots{
		ModsDir:  opts.Config.ModsDir,
		LinksDir: opts.Config.LinksDir,
	})

	result, err := engine.PruneBroken()
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "PruneLinks").Int("pruned", result.Pruned).Msg("Command finished")
	return result, nil
}
