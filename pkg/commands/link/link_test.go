package link_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/link"
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/testutil"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

func TestLinkMods_ExplicitIDs(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	testutil.MakeModDirs(t, modsDir, "111")

	result, err := link.LinkMods(link.LinkModsOptions{
		Config:   &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		IDs:      []string{"111"},
		Resolver: testutil.MapResolver(map[string]string{"111": "alpha mod"}),
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, types.OutcomeCreated, result.Results[0].Outcome)

	target, err := os.Readlink(filepath.Join(linksDir, "alpha_mod"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(modsDir, "111"), target)
}

func TestLinkMods_SyncWhenNoIDs(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	testutil.MakeModDirs(t, modsDir, "111", "222")

	result, err := link.LinkMods(link.LinkModsOptions{
		Config: &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		Resolver: testutil.MapResolver(map[string]string{
			"111": "alpha mod",
			"222": "beta mod",
		}),
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	for _, r := range result.Results {
		assert.Equal(t, types.OutcomeCreated, r.Outcome)
	}
}

func TestLinkMods_RejectsNonNumericID(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)

	_, err := link.LinkMods(link.LinkModsOptions{
		Config:   &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		IDs:      []string{"not-an-id"},
		Resolver: testutil.MapResolver(nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLinkMods_MissingModsRootIsFatalForSync(t *testing.T) {
	_, err := link.LinkMods(link.LinkModsOptions{
		Config: &config.Config{
			ModsDir:  filepath.Join(t.TempDir(), "nope"),
			LinksDir: t.TempDir(),
		},
		Resolver: testutil.MapResolver(nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirUnavailable))
}

func TestLinkMods_MissingModsRootIsFatalForExplicitIDs(t *testing.T) {
	// An unusable mods root must surface as a returned error, not be
	// folded into per-item SourceMissing outcomes
	_, err := link.LinkMods(link.LinkModsOptions{
		Config: &config.Config{
			ModsDir:  filepath.Join(t.TempDir(), "nope"),
			LinksDir: t.TempDir(),
		},
		IDs:      []string{"111"},
		Resolver: testutil.MapResolver(map[string]string{"111": "alpha mod"}),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirUnavailable))
}

func TestLinkMods_ModsRootIsFileIsFatal(t *testing.T) {
	root := filepath.Join(t.TempDir(), "mods")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0644))

	_, err := link.LinkMods(link.LinkModsOptions{
		Config:   &config.Config{ModsDir: root, LinksDir: t.TempDir()},
		IDs:      []string{"111"},
		Resolver: testutil.MapResolver(nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirUnavailable))
}
