// Package config handles configuration management for legacychain.
// It layers the embedded defaults, an optional TOML config file,
// LEGACYCHAIN_* environment variables and command-line overrides, in that
// order, using koanf.
package config
