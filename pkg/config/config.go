package config

import (
	"github.com/arthur-debert/legacychain/pkg/auth"
	"github.com/arthur-debert/legacychain/pkg/datastore"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/types"
)

// Config is the complete legacychain configuration
type Config struct {
	// Identity is the default caller for mutating commands
	Identity string       `koanf:"identity"`
	Store    StoreConfig  `koanf:"store"`
	Auth     AuthConfig   `koanf:"auth"`
	Output   OutputConfig `koanf:"output"`
}

// StoreConfig selects where and how will records are persisted
type StoreConfig struct {
	Format string `koanf:"format"`
	Dir    string `koanf:"dir"`
}

// AuthConfig selects the authorizer used by create
type AuthConfig struct {
	Mode string `koanf:"mode"`
}

// OutputConfig controls how records are printed
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Caller returns the configured default caller identity
func (c *Config) Caller() types.Identity {
	return types.Identity(c.Identity)
}

// Validate checks values that would otherwise fail late, at first use
func (c *Config) Validate() error {
	if _, err := datastore.CodecByName(c.Store.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid store.format")
	}
	if _, err := auth.FromMode(c.Auth.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid auth.mode")
	}
	return nil
}
