// Package paths provides centralized path handling for legacychain.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for locating the will store, the
// configuration file and the log file.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/legacychain/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for legacychain
	EnvDataDir = "LEGACYCHAIN_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for legacychain
	EnvConfigDir = "LEGACYCHAIN_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files. These define the on-disk layout and are
// not user-configurable; the store location itself is configurable
// through pkg/config.
const (
	// AppDirName is the directory name used under each XDG base dir
	AppDirName = "legacychain"

	// WillsDir is the subdirectory of the data dir holding will records
	WillsDir = "wills"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "legacychain.log"
)

// Paths provides centralized path management for legacychain
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	StoreDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string

	// storeDir is where will records are written
	storeDir string
}

// New creates a new Paths instance. A non-empty storeDir overrides the
// default <data dir>/wills location.
func New(storeDir string) (Paths, error) {
	p := &paths{}
	p.setupXDGDirs()

	if storeDir == "" {
		p.storeDir = filepath.Join(p.xdgData, WillsDir)
		return p, nil
	}

	abs, err := filepath.Abs(expandHome(storeDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for store dir %s", storeDir)
	}
	p.storeDir = abs
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// Same lookup the logger uses, so both agree on the state dir
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

func (p *paths) DataDir() string        { return p.xdgData }
func (p *paths) ConfigDir() string      { return p.xdgConfig }
func (p *paths) StateDir() string       { return p.xdgState }
func (p *paths) StoreDir() string       { return p.storeDir }
func (p *paths) ConfigFilePath() string { return filepath.Join(p.xdgConfig, ConfigFileName) }
func (p *paths) LogFilePath() string    { return filepath.Join(p.xdgState, LogFileName) }

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user forms are left alone
	return path
}
