// Package cli wires configuration, paths, storage and authorization into a
// ready-to-use registry for the legacychain commands.
package cli

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/legacychain/pkg/auth"
	"github.com/arthur-debert/legacychain/pkg/config"
	"github.com/arthur-debert/legacychain/pkg/datastore"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/filesystem"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/arthur-debert/legacychain/pkg/paths"
	"github.com/arthur-debert/legacychain/pkg/registry"
	"github.com/arthur-debert/legacychain/pkg/types"
)

// GlobalOptions holds the persistent flags shared by every command
type GlobalOptions struct {
	Verbosity  int
	ConfigPath string
	DataDir    string
}

// App is a registry together with the configuration it was built from
type App struct {
	Config   *config.Config
	Paths    paths.Paths
	FS       types.FS
	Registry *registry.Registry
}

// ConfigFile returns the config file the options point at and whether it
// was requested explicitly.
func ConfigFile(opts *GlobalOptions) (string, bool, error) {
	if opts.ConfigPath != "" {
		return opts.ConfigPath, true, nil
	}
	p, err := paths.New("")
	if err != nil {
		return "", false, err
	}
	return p.ConfigFilePath(), false, nil
}

// Bootstrap loads configuration and builds the filesystem-backed registry
func Bootstrap(opts *GlobalOptions) (*App, error) {
	logger := logging.GetLogger("cli")
	defer logging.LogOperationStart(logger, "bootstrap")()

	cfgPath, required, err := ConfigFile(opts)
	if err != nil {
		return nil, err
	}

	overrides := map[string]interface{}{}
	if opts.DataDir != "" {
		overrides["store.dir"] = filepath.Join(opts.DataDir, paths.WillsDir)
	}

	cfg, err := config.Load(config.Options{
		Path:      cfgPath,
		Required:  required,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Store.Dir)
	if err != nil {
		return nil, err
	}

	codec, err := datastore.CodecByName(cfg.Store.Format)
	if err != nil {
		return nil, err
	}
	authz, err := auth.FromMode(cfg.Auth.Mode)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	store := datastore.NewFilesystem(fsys, p.StoreDir(), codec)
	reg := registry.New(store, authz, registry.WithExecutionHook(ReleaseHook))

	logger.Debug().
		Str("config", cfgPath).
		Str("storeDir", p.StoreDir()).
		Str("codec", codec.Name()).
		Str("authMode", cfg.Auth.Mode).
		Msg("Registry ready")

	return &App{Config: cfg, Paths: p, FS: fsys, Registry: reg}, nil
}

// Caller resolves the identity a command acts as. An explicit --as value
// wins over the configured identity.
func (a *App) Caller(as string) types.Identity {
	if strings.TrimSpace(as) != "" {
		return types.Identity(strings.TrimSpace(as))
	}
	return a.Config.Caller()
}

// ParseIdentity validates a positional identity argument
func ParseIdentity(name, value string) (types.Identity, error) {
	id := types.Identity(strings.TrimSpace(value))
	if id.IsZero() {
		return "", errors.Newf(errors.ErrInvalidInput, "%s must not be empty", name).
			WithDetail("argument", name)
	}
	return id, nil
}

// ReleaseHook runs once when a will is executed. Asset release is not
// implemented; the hook records which beneficiaries the will names.
func ReleaseHook(owner types.Identity, record types.WillRecord) error {
	logger := logging.WithFields(map[string]interface{}{
		"component": "release",
		"owner":     owner.String(),
	})
	logger.Info().
		Str("contentHash", record.ContentHash).
		Strs("beneficiaries", types.Strings(record.Beneficiaries)).
		Msg("Releasing will to beneficiaries")
	return nil
}
