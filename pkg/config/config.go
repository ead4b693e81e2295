// Package config loads optional user defaults for gitgraph from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/gitgraph/config.toml (falling back to
// ~/.config/gitgraph/config.toml). A missing file is not an error; command
// line flags always win over file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the directory name under the user config root.
const appName = "gitgraph"

// DefaultThreshold is the object count above which processing aborts
// without --force.
const DefaultThreshold = 100

// DefaultOutput is the output path used when neither the config file nor
// the --output flag provides one.
const DefaultOutput = "gitgraph.svg"

// Config holds user-tunable defaults.
type Config struct {
	// Output is the default output file path.
	Output string `toml:"output"`
	// IncludeIndex controls whether the staging-area table is drawn.
	// Nil means unset (defaults to true).
	IncludeIndex *bool `toml:"include_index"`
	// ObjectThreshold overrides the size-guard ceiling.
	ObjectThreshold int `toml:"object_threshold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:          DefaultOutput,
		ObjectThreshold: DefaultThreshold,
	}
}

// Load reads the user config file, layering it over [Default]. A missing
// file yields the defaults with a nil error; a malformed file returns the
// defaults along with the parse error so callers can warn and continue.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file, layering it over [Default].
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Default(), err
	}

	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.IncludeIndex != nil {
		cfg.IncludeIndex = file.IncludeIndex
	}
	if file.ObjectThreshold > 0 {
		cfg.ObjectThreshold = file.ObjectThreshold
	}
	return cfg, nil
}

// Path returns the config file location using the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
