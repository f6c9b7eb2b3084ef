package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/Pixelated-Grunt/a3modlink/pkg/errors"
)

// Marshal renders the effective merged configuration as TOML, so a
// user can freeze their current flag/env/file combination into a
// config file with gen-config.
func (c *Config) Marshal() ([]byte, error) {
	raw := c.Raw()
	if raw == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded through Load")
	}

	out, err := gotoml.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "unable to marshal configuration")
	}
	return out, nil
}
