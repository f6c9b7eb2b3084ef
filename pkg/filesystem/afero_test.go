package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/filesystem"
	"github.com/Pixelated-Grunt/a3modlink/pkg/scanner"
)

func TestAferoFS_SymlinkRoundTrip(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/mods/111", 0755))
	require.NoError(t, fsys.Symlink("/mods/111", "/links/alpha"))

	target, err := fsys.Readlink("/links/alpha")
	require.NoError(t, err)
	assert.Equal(t, "/mods/111", target)
}

func TestAferoFS_ScannerIntegration(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/mods/111", 0755))
	require.NoError(t, fsys.MkdirAll("/mods/not-a-mod", 0755))

	entries, err := scanner.ListContentEntries(fsys, "/mods")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "111", entries[0].ID)
	assert.Equal(t, filepath.Join("/mods", "111"), entries[0].Path)
}

func TestAferoFS_Remove(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/links", 0755))
	require.NoError(t, fsys.Symlink("/mods/111", "/links/alpha"))
	require.NoError(t, fsys.Remove("/links/alpha"))

	_, err := fsys.Readlink("/links/alpha")
	assert.Error(t, err)
}
