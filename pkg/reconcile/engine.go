// Package reconcile implements the link-state engine: it compares the
// mods directory against the links directory, decides which links need
// creating or removing, applies those decisions, and reports one
// outcome per item. No per-item failure ever aborts a run.
package reconcile

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/resolver"
	"github.com/Pixelated-Grunt/a3modlink/pkg/sanitize"
	"github.com/Pixelated-Grunt/a3modlink/pkg/scanner"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// Roots holds the two directories the engine reconciles. They are
// explicit configuration, injected at construction and never read from
// process-wide state.
type Roots struct {
	// ModsDir is the content root holding digit-named mod directories
	ModsDir string

	// LinksDir is the links root holding the named symlinks
	LinksDir string
}

// Engine applies reconciliation decisions to the filesystem. Execution
// is serial: one resolver call and one mutation at a time, relying on
// the filesystem's own atomicity for link-name collisions rather than
// any cross-process lock. A partially completed run leaves the links
// directory in a valid state and is safe to re-run.
type Engine struct {
	fs       types.FS
	resolver resolver.Resolver
	roots    Roots
	logger   zerolog.Logger
}

// New creates an engine over the given filesystem, resolver and roots
func New(fsys types.FS, res resolver.Resolver, roots Roots) *Engine {
	return &Engine{
		fs:       fsys,
		resolver: res,
		roots:    roots,
		logger:   logging.GetLogger("reconcile"),
	}
}

// CreateLink resolves one workshop id to a title and links
// linksDir/<sanitized title> -> modsDir/<id>. Every failure mode maps
// to an outcome; re-running for an already-linked id yields
// OutcomeAlreadyLinked, not an error.
func (e *Engine) CreateLink(ctx context.Context, id string) types.LinkResult {
	result := types.LinkResult{ID: id}

	title, err := e.resolver.Resolve(ctx, id)
	if err != nil {
		e.logger.Debug().Err(err).Str("id", id).Msg("title lookup failed")
		result.Outcome = types.OutcomeUnresolved
		result.Err = err
		return result
	}

	name := sanitize.Name(title)
	if name == "" || strings.Trim(name, "_") == "" {
		// An all-symbol title sanitizes down to nothing usable
		result.Outcome = types.OutcomeUnresolved
		result.Err = errors.Newf(errors.ErrResolution, "title for %s sanitizes to nothing", id)
		return result
	}
	result.Name = name

	source := filepath.Join(e.roots.ModsDir, id)
	info, err := e.fs.Stat(source)
	if err != nil || !info.IsDir() {
		result.Outcome = types.OutcomeSourceMissing
		result.Err = errors.Newf(errors.ErrSourceMissing, "mod directory %s does not exist", source)
		return result
	}
	result.Target = source

	// A fresh install has no links directory yet
	if err := e.fs.MkdirAll(e.roots.LinksDir, 0755); err != nil {
		result.Outcome = types.OutcomeCreateFailed
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "unable to create links directory %s", e.roots.LinksDir)
		return result
	}

	linkPath := filepath.Join(e.roots.LinksDir, name)
	if err := e.fs.Symlink(source, linkPath); err != nil {
		if os.IsExist(err) {
			// The existing link wins regardless of its target; log the
			// target so a conflicting retarget is at least observable
			if existing, rerr := e.fs.Readlink(linkPath); rerr == nil {
				e.logger.Debug().Str("name", name).Str("existing", existing).Msg("link name already present")
			}
			result.Outcome = types.OutcomeAlreadyLinked
			return result
		}
		result.Outcome = types.OutcomeCreateFailed
		result.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "unable to create link %s", linkPath)
		return result
	}

	e.logger.Info().Str("id", id).Str("name", name).Str("target", source).Msg("created link")
	result.Outcome = types.OutcomeCreated
	return result
}

// SyncAll reconciles the whole mods directory against the links
// directory. The pending set is the symmetric difference between mod
// ids on disk and the ids embedded in existing link targets: ids in
// both are already linked and skipped, ids present only as stale link
// targets are still attempted and land on OutcomeSourceMissing.
func (e *Engine) SyncAll(ctx context.Context) (*types.SyncResult, error) {
	contentEntries, err := scanner.ListContentEntries(e.fs, e.roots.ModsDir)
	if err != nil {
		return nil, err
	}

	linkEntries, err := scanner.ListLinkEntriesUnsorted(e.fs, e.roots.LinksDir)
	if err != nil {
		return nil, err
	}

	contentIDs := make(map[string]bool, len(contentEntries))
	for _, entry := range contentEntries {
		contentIDs[entry.ID] = true
	}
	linkedIDs := make(map[string]bool, len(linkEntries))
	for _, entry := range linkEntries {
		linkedIDs[entry.TargetID()] = true
	}

	var pending []string
	for id := range contentIDs {
		if !linkedIDs[id] {
			pending = append(pending, id)
		}
	}
	for id := range linkedIDs {
		if !contentIDs[id] {
			pending = append(pending, id)
		}
	}

	if len(pending) == 0 {
		e.logger.Info().Int("mods", len(contentEntries)).Msg("all mods already linked")
		return &types.SyncResult{AllLinked: true}, nil
	}

	// Outcome order is id-sorted regardless of set iteration order
	sort.Strings(pending)

	result := &types.SyncResult{Results: make([]types.LinkResult, 0, len(pending))}
	for _, id := range pending {
		result.Results = append(result.Results, e.CreateLink(ctx, id))
	}

	e.logger.Info().Int("pending", len(pending)).Msg("sync pass finished")
	return result, nil
}

// RemoveLinks removes the named links, one outcome per name in input
// order. A name that does not exist, or that names anything other than
// a symlink, comes back OutcomeNotFound; a real file or directory is
// never deleted.
func (e *Engine) RemoveLinks(names []string) []types.LinkResult {
	results := make([]types.LinkResult, 0, len(names))

	for _, name := range names {
		result := types.LinkResult{Name: name}
		linkPath := filepath.Join(e.roots.LinksDir, name)

		info, err := e.fs.Lstat(linkPath)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			result.Outcome = types.OutcomeNotFound
			result.Err = errors.Newf(errors.ErrNotFound, "%s is not a link", name)
			results = append(results, result)
			continue
		}

		if err := e.fs.Remove(linkPath); err != nil {
			result.Outcome = types.OutcomeRemoveFailed
			result.Err = errors.Wrapf(err, errors.ErrSymlinkRemove, "unable to remove link %s", name)
			results = append(results, result)
			continue
		}

		e.logger.Info().Str("name", name).Msg("removed link")
		result.Outcome = types.OutcomeRemoved
		results = append(results, result)
	}

	return results
}

// PruneBroken removes every link whose target no longer exists on
// disk. Links with live targets are left untouched and omitted from
// the result entirely, they are not reported as successes.
func (e *Engine) PruneBroken() (*types.PruneResult, error) {
	linkEntries, err := scanner.ListLinkEntries(e.fs, e.roots.LinksDir)
	if err != nil {
		return nil, err
	}

	result := &types.PruneResult{}
	for _, entry := range linkEntries {
		if entry.Validity != types.LinkBroken {
			continue
		}

		item := types.LinkResult{Name: entry.Name, Target: entry.Target}
		linkPath := filepath.Join(e.roots.LinksDir, entry.Name)

		if err := e.fs.Remove(linkPath); err != nil {
			item.Outcome = types.OutcomePruneFailed
			item.Err = errors.Wrapf(err, errors.ErrSymlinkRemove, "unable to prune link %s", entry.Name)
		} else {
			e.logger.Info().Str("name", entry.Name).Str("target", entry.Target).Msg("pruned broken link")
			item.Outcome = types.OutcomePruned
			result.Pruned++
		}

		result.Results = append(result.Results, item)
	}

	return result, nil
}
