// Package scanner enumerates mod directories and link entries,
// producing the typed snapshots the reconciliation engine works from.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/logging"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

// modIDPattern matches workshop ids: directory names made of decimal
// digits only
var modIDPattern = regexp.MustCompile(`^[0-9]+$`)

// IsModID reports whether name is a plausible workshop id
func IsModID(name string) bool {
	return modIDPattern.MatchString(name)
}

// VerifyModsRoot checks that modsRoot exists and is a directory. The
// mods root is the one directory this tool never creates, so an
// unusable one is a configuration failure.
func VerifyModsRoot(fsys types.FS, modsRoot string) error {
	info, err := fsys.Stat(modsRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirUnavailable, "mods directory %s is not available", modsRoot)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDirUnavailable, "mods path %s is not a directory", modsRoot)
	}
	return nil
}

// ListContentEntries lists the immediate subdirectories of modsRoot
// whose names are all digits, sorted by id. Non-digit or non-directory
// entries are silently excluded. A missing or non-directory modsRoot is
// an error.
func ListContentEntries(fsys types.FS, modsRoot string) ([]types.ContentEntry, error) {
	logger := logging.GetLogger("scanner")

	if err := VerifyModsRoot(fsys, modsRoot); err != nil {
		return nil, err
	}

	dirEntries, err := fsys.ReadDir(modsRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirUnavailable, "unable to read mods directory %s", modsRoot)
	}

	var entries []types.ContentEntry
	for _, entry := range dirEntries {
		if !entry.IsDir() || !IsModID(entry.Name()) {
			logger.Trace().Str("entry", entry.Name()).Msg("skipping non-mod entry")
			continue
		}
		path, err := filepath.Abs(filepath.Join(modsRoot, entry.Name()))
		if err != nil {
			logger.Warn().Err(err).Str("entry", entry.Name()).Msg("unable to resolve mod path, skipping")
			continue
		}
		entries = append(entries, types.ContentEntry{ID: entry.Name(), Path: path})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	logger.Debug().Str("modsRoot", modsRoot).Int("count", len(entries)).Msg("listed content entries")
	return entries, nil
}

// ListLinkEntries lists the symbolic links under linksRoot, sorted by
// link name for deterministic reporting. A missing linksRoot is not an
// error: a fresh install simply has no links yet.
func ListLinkEntries(fsys types.FS, linksRoot string) ([]types.LinkEntry, error) {
	entries, err := ListLinkEntriesUnsorted(fsys, linksRoot)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// ListLinkEntriesUnsorted is ListLinkEntries without the ordering
// guarantee, for bulk internal operations where order does not matter.
func ListLinkEntriesUnsorted(fsys types.FS, linksRoot string) ([]types.LinkEntry, error) {
	logger := logging.GetLogger("scanner")

	dirEntries, err := fsys.ReadDir(linksRoot)
	if err != nil {
		// An absent links directory means no links, not a failure; any
		// other read error (a file where the directory should be, bad
		// permissions) is a configuration problem
		if os.IsNotExist(err) {
			logger.Debug().Str("linksRoot", linksRoot).Msg("links directory absent, treating as empty")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrDirUnavailable, "links directory %s is not available", linksRoot)
	}

	var entries []types.LinkEntry
	for _, entry := range dirEntries {
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		entries = append(entries, readLinkEntry(fsys, linksRoot, entry.Name()))
	}

	logger.Debug().Str("linksRoot", linksRoot).Int("count", len(entries)).Msg("listed link entries")
	return entries, nil
}

// readLinkEntry resolves one link to an absolute target and classifies
// it. Resolution failures never raise; they come back as Broken.
func readLinkEntry(fsys types.FS, linksRoot, name string) types.LinkEntry {
	linkPath := filepath.Join(linksRoot, name)

	target, err := fsys.Readlink(linkPath)
	if err != nil {
		return types.LinkEntry{Name: name, Validity: types.LinkBroken}
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(linksRoot, target)
	}
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	entry := types.LinkEntry{Name: name, Target: target}

	info, err := fsys.Stat(target)
	switch {
	case err != nil:
		entry.Validity = types.LinkBroken
	case info.IsDir() && IsModID(filepath.Base(target)):
		entry.Validity = types.LinkValid
	default:
		entry.Validity = types.LinkForeign
	}

	return entry
}
