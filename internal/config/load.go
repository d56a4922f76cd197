package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load resolves the effective configuration. Defaults are applied first,
// then a YAML file if one is found, then command-line flags on top.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = discoverConfig()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// discoverConfig checks the working directory first, then the per-user
// config directory. Returns "" when neither has a config.yaml.
func discoverConfig() string {
	for _, path := range []string{
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile merges YAML values from path into cfg. Fields the file
// omits keep whatever value cfg already holds.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// ConfigDir returns the per-user configuration directory for the
// current platform.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Emberisle")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Emberisle")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "emberisle")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "emberisle")
	}
}
