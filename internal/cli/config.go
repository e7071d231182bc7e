package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences read from config.toml. Zero values fall back
// to the defaults in DefaultConfig, so a partial file only overrides the keys
// it names.
type Config struct {
	// Indent is the indentation unit for pretty text output.
	Indent string `toml:"indent"`

	// Convert holds defaults for the convert command.
	Convert ConvertConfig `toml:"convert"`
}

// ConvertConfig holds convert command defaults.
type ConvertConfig struct {
	// Gzip compresses binary output by default.
	Gzip bool `toml:"gzip"`

	// RootName is the root name applied when converting text formats to
	// binary, which carry no name of their own.
	RootName string `toml:"root-name"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{Indent: "  "}
}

// LoadConfig reads a config file and applies it over the defaults. A missing
// file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Indent == "" {
		cfg.Indent = DefaultConfig().Indent
	}
	return cfg, nil
}

// LoadUserConfig loads ~/.config/nbtkit/config.toml, falling back to the
// defaults when the file is absent or unreadable.
func LoadUserConfig() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(filepath.Join(dir, "config.toml"))
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
