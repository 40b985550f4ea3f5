// Package config loads pathctl settings: embedded defaults first, then
// the user config file, then PATHCTL_* environment overrides.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the name of the user configuration file.
const ConfigFileName = "pathctl.toml"

// envPrefix is the prefix of environment variables that override config keys.
const envPrefix = "PATHCTL_"

// Config holds the effective settings.
type Config struct {
	// Scope is the default scope name (Process, User or Machine).
	Scope string `koanf:"scope" toml:"scope"`
	// Delimiter separates entries in the raw stored value. Empty means
	// the platform list separator.
	Delimiter string `koanf:"delimiter" toml:"delimiter"`
	Output    Output `koanf:"output" toml:"output"`
}

// Output holds output-related settings.
type Output struct {
	// Format is the default get-path output format.
	Format string `koanf:"format" toml:"format"`
}

// DelimiterOrDefault resolves an empty delimiter to the platform list
// separator.
func (c *Config) DelimiterOrDefault() string {
	if c.Delimiter != "" {
		return c.Delimiter
	}
	return string(os.PathListSeparator)
}

// FilePath returns the user config file location.
func FilePath() string {
	return filepath.Join(xdg.ConfigHome, "pathctl", ConfigFileName)
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file, if present
	path := FilePath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
	}

	// 3. Environment overrides: PATHCTL_SCOPE, PATHCTL_DELIMITER,
	// PATHCTL_OUTPUT_FORMAT
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}
