// ABOUTME: Configuration for the catalog converters.
// ABOUTME: YAML file under XDG config dir with environment overrides.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/convert"
	"gopkg.in/yaml.v3"
)

// Config holds converter settings.
type Config struct {
	// DataPath is the canonical cards.json location (default: src/data/cards.json)
	DataPath string `yaml:"data_path"`

	// ExportPath is where `catalog export` writes when no path is given.
	ExportPath string `yaml:"export_path"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataPath:   catalog.DefaultPath,
		ExportPath: convert.DefaultExportPath,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "catalog")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads configuration from path, or from ConfigPath when path is
// empty. A missing file yields defaults. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path is expected CLI behavior
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CATALOG_DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("CATALOG_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// fillDefaults restores defaults for keys explicitly blanked in the file.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.DataPath == "" {
		c.DataPath = def.DataPath
	}
	if c.ExportPath == "" {
		c.ExportPath = def.ExportPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Save writes configuration to path, creating its directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
