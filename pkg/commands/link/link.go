package link

import (
	"context"

	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/filesystem"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/reconcile"
	"github.com/Pixelated-Grunt/a3modlink/pkg/resolver"
	"github.com/Pixelated-Grunt/a3modlink/pkg/scanner"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// LinkModsOptions defines the options for the LinkMods command
type LinkModsOptions struct {
	// Config carries the roots and the lookup settings
	Config *config.Config

	// IDs are the workshop ids to link; empty means reconcile
	// everything under the mods root
	IDs []string

	// FS overrides the filesystem, for tests
	FS types.FS

	// Resolver overrides the title lookup, for tests
	Resolver resolver.Resolver
}

// LinkMods creates links for the given ids, or runs a full
// reconciliation pass when no ids are given. Per-item failures are
// reported in the result, never as a returned error; the returned
// error is reserved for configuration-level problems such as an
// unusable mods root or a non-numeric id argument.
func LinkMods(opts LinkModsOptions) (*types.SyncResult, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "LinkMods").Strs("ids", opts.IDs).Msg("Executing command")

	for _, id := range opts.IDs {
		if !scanner.IsModID(id) {
			return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a workshop id (digits only)", id)
		}
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	engine := newEngine(opts, fsys)
	ctx := context.Background()

	if len(opts.IDs) == 0 {
		result, err := engine.SyncAll(ctx)
		if err != nil {
			return nil, err
		}
		log.Info().Str("command", "LinkMods").Int("processed", len(result.Results)).Msg("Command finished")
		return result, nil
	}

	// An unusable mods root on an explicit add is a configuration
	// failure, not a per-item outcome
	if err := scanner.VerifyModsRoot(fsys, opts.Config.ModsDir); err != nil {
		return nil, err
	}

	result := &types.SyncResult{Results: make([]types.LinkResult, 0, len(opts.IDs))}
	for _, id := range opts.IDs {
		result.Results = append(result.Results, engine.CreateLink(ctx, id))
	}

	log.Info().Str("command", "LinkMods").Int("processed", len(result.Results)).Msg("Command finished")
	return result, nil
}

func newEngine(opts LinkModsOptions, fsys types.FS) *reconcile.Engine {
	res := opts.Resolver
	if res == nil {
		res = resolver.NewSteamResolver(resolver.SteamOptions{
			Endpoint:  opts.Config.API.Endpoint,
			Timeout:   opts.Config.API.Timeout,
			Lowercase: opts.Config.API.Lowercase,
		})
	}

	return reconcile.New(fsys, res, reconcile.Roots{
		ModsDir:  opts.Config.ModsDir,
		LinksDir: opts.Config.LinksDir,
	})
}
