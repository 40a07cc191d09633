package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "LEGACYCHAIN_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultConfigContent returns the embedded default configuration file
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// Options controls where Load looks for configuration
type Options struct {
	// Path is the config file to read. A missing file is only an error
	// when Required is set.
	Path     string
	Required bool

	// Overrides are applied last, keyed by koanf path (e.g. "store.dir").
	// Empty string values are skipped so unset flags don't mask lower layers.
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults, file, environment and overrides
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err == nil {
			if err := k.Load(file.Provider(opts.Path), parserFor(opts.Path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.Path)
			}
			logger.Debug().Str("path", opts.Path).Msg("Loaded config file")
		} else if opts.Required || !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.Path)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parserFor picks the koanf parser from the config file extension
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func nonEmpty(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}
