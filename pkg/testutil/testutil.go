// Package testutil provides shared fixtures for a3modlink tests:
// builders for mods/links directory trees and a canned resolver.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
	"github.com/Pixelated-Grunt/a3modlink/pkg/resolver"
)

// TempRoots creates a fresh mods/links directory pair under a test
// temp dir. The links directory is NOT created: a fresh install does
// not have one.
func TempRoots(t *testing.T) (modsDir, linksDir string) {
	t.Helper()
	base := t.TempDir()
	modsDir = filepath.Join(base, "mods")
	linksDir = filepath.Join(base, "links")
	require.NoError(t, os.MkdirAll(modsDir, 0755))
	return modsDir, linksDir
}

// MakeModDirs creates digit-named mod directories under modsDir
func MakeModDirs(t *testing.T, modsDir string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, os.MkdirAll(filepath.Join(modsDir, id), 0755))
	}
}

// MakeLink creates a symlink name -> target under linksDir, creating
// linksDir first if needed
func MakeLink(t *testing.T, linksDir, name, target string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(linksDir, 0755))
	require.NoError(t, os.Symlink(target, filepath.Join(linksDir, name)))
}

// MapResolver returns a resolver backed by a fixed id -> title map.
// Unknown ids fail with a resolution error, like the real API does for
// ids it has no details for.
func MapResolver(titles map[string]string) resolver.Resolver {
	return resolver.Func(func(ctx context.Context, id string) (string, error) {
		title, ok := titles[id]
		if !ok {
			return "", errors.Newf(errors.ErrResolution, "no title for %s", id)
		}
		return title, nil
	})
}
