package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the tool settings, loaded from a TOML file with
// environment overrides.
type Config struct {
	DataDir      string `toml:"data_dir"`      // GRAPHAR_DATA_DIR
	DefaultTheme string `toml:"default_theme"` // GRAPHAR_THEME

	// WholeDatasetSniffing opts into whole-dataset axis-key
	// eligibility instead of first-record-only.
	WholeDatasetSniffing bool `toml:"whole_dataset_sniffing"`
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "graphar.toml"
	}
	return filepath.Join(home, ".graphar", "config.toml")
}

// Load reads the config file at path (DefaultPath when empty), fills in
// defaults for unset keys and applies environment overrides. A missing
// file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	c := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("GRAPHAR_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("GRAPHAR_THEME"); v != "" {
		c.DefaultTheme = v
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".graphar", "datasets")
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = "classic"
	}
	return c, nil
}
