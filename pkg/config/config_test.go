package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixelated-Grunt/a3modlink/pkg/config"
	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
)

// isolateConfigHome points XDG_CONFIG_HOME at a fresh temp dir so a
// config file on the host machine cannot leak into the test
func isolateConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigHome(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Contains(t, cfg.ModsDir, "steamapps/workshop/content/107410")
	assert.NotContains(t, cfg.ModsDir, "~", "home must be expanded")
	assert.Equal(t, "https://api.steampowered.com/ISteamRemoteStorage/GetPublishedFileDetails/v1/", cfg.API.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.Lowercase)
}

func TestLoad_UserFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a3modlink.toml")
	content := `
mods_dir = "/srv/mods"
links_dir = "/srv/links"

[api]
timeout = "3s"
lowercase = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/mods", cfg.ModsDir)
	assert.Equal(t, "/srv/links", cfg.LinksDir)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.API.Lowercase)
	// untouched keys keep their defaults
	assert.NotEmpty(t, cfg.API.Endpoint)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateConfigHome(t)
	t.Setenv("A3MODLINK_MODS_DIR", "/env/mods")
	t.Setenv("A3MODLINK_API_TIMEOUT", "2s")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "/env/mods", cfg.ModsDir)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("mods_dir = [unclosed"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestMarshal(t *testing.T) {
	isolateConfigHome(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	assert.Contains(t, string(out), "mods_dir")
	assert.Contains(t, string(out), "[api]")
	assert.Contains(t, string(out), "10s")
}

func TestDefaultContent(t *testing.T) {
	content := config.DefaultContent()
	assert.Contains(t, content, "mods_dir")
	assert.Contains(t, content, "links_dir")
	assert.Contains(t, content, "[api]")
}
