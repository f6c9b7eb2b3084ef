// Package config loads a3modlink's layered configuration: embedded
// defaults, then an optional user config file, then A3MODLINK_
// environment variables. Later layers win.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. A3MODLINK_LINKS_DIR or A3MODLINK_API_TIMEOUT
const envPrefix = "A3MODLINK_"

// APIConfig configures the title lookup
type APIConfig struct {
	Endpoint  string        `koanf:"endpoint"`
	Timeout   time.Duration `koanf:"timeout"`
	Lowercase bool          `koanf:"lowercase"`
}

// Config is the effective a3modlink configuration. It is built once at
// startup and passed into every core operation; nothing reads it from
// process-wide mutable state.
type Config struct {
	ModsDir  string    `koanf:"mods_dir"`
	LinksDir string    `koanf:"links_dir"`
	API      APIConfig `koanf:"api"`

	k *koanf.Koanf
}

// DefaultPath returns the default user config file location,
// $XDG_CONFIG_HOME/a3modlink/a3modlink.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "a3modlink", "a3modlink.toml")
}

// Load builds the configuration. configFile may be empty, in which
// case the default location is used if a file exists there; an
// explicitly given file that is missing or malformed is an error.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultPath()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", configFile)
		}
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", configFile)
	}

	// 3. Environment overrides: A3MODLINK_API_TIMEOUT -> api.timeout
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(key, "api_"); ok {
			return "api." + rest
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg := &Config{k: k}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}

	cfg.ModsDir = expandHome(cfg.ModsDir)
	cfg.LinksDir = expandHome(cfg.LinksDir)

	return cfg, nil
}

// Raw returns the merged configuration as a nested map, for
// marshalling the effective config back out
func (c *Config) Raw() map[string]interface{} {
	if c.k == nil {
		return nil
	}
	return c.k.Raw()
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}
