package unlink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/unlink"
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/testutil"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

func TestUnlinkMods(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	testutil.MakeModDirs(t, modsDir, "111")
	testutil.MakeLink(t, linksDir, "alpha", filepath.Join(modsDir, "111"))

	result, err := unlink.UnlinkMods(unlink.UnlinkModsOptions{
		Config: &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		Names:  []string{"alpha", "missing"},
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, types.OutcomeRemoved, result.Results[0].Outcome)
	assert.Equal(t, types.OutcomeNotFound, result.Results[1].Outcome)

	_, err = os.Lstat(filepath.Join(linksDir, "alpha"))
	assert.True(t, os.IsNotExist(err))
}

func TestUnlinkMods_RealDirectorySurvives(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	require.NoError(t, os.MkdirAll(filepath.Join(linksDir, "keepme"), 0755))

	result, err := unlink.UnlinkMods(unlink.UnlinkModsOptions{
		Config: &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		Names:  []string{"keepme"},
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, types.OutcomeNotFound, result.Results[0].Outcome)

	info, err := os.Stat(filepath.Join(linksDir, "keepme"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
