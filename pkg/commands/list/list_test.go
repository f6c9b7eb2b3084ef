package list_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/commands/list"
	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/testutil"
	"github.com/Pixelated-Grunt/a3modlink/pkg/types"
)

func TestListLinks(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	testutil.MakeModDirs(t, modsDir, "111")
	testutil.MakeLink(t, linksDir, "zulu", filepath.Join(modsDir, "111"))
	testutil.MakeLink(t, linksDir, "alpha", filepath.Join(modsDir, "999"))

	result, err := list.ListLinks(list.ListLinksOptions{
		Config: &config.Config{ModsDir: modsDir, LinksDir: linksDir},
	})
	require.NoError(t, err)
	require.Len(t, result.Links, 2)

	// sorted by name
	assert.Equal(t, "alpha", result.Links[0].Name)
	assert.Equal(t, types.LinkBroken, result.Links[0].Validity)
	assert.Equal(t, "zulu", result.Links[1].Name)
	assert.Equal(t, types.LinkValid, result.Links[1].Validity)
}

func TestListLinks_BrokenOnly(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)
	testutil.MakeModDirs(t, modsDir, "111")
	testutil.MakeLink(t, linksDir, "alive", filepath.Join(modsDir, "111"))
	testutil.MakeLink(t, linksDir, "dead", filepath.Join(modsDir, "999"))

	result, err := list.ListLinks(list.ListLinksOptions{
		Config:     &config.Config{ModsDir: modsDir, LinksDir: linksDir},
		BrokenOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, result.Links, 1)
	assert.Equal(t, "dead", result.Links[0].Name)
}

func TestListLinks_MissingLinksDir(t *testing.T) {
	modsDir, linksDir := testutil.TempRoots(t)

	result, err := list.ListLinks(list.ListLinksOptions{
		Config: &config.Config{ModsDir: modsDir, LinksDir: linksDir},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Links)
}
