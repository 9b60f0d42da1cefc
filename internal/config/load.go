package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfig names an environment variable holding a config file path. It is
// consulted after --config and before the search locations.
const EnvConfig = "BOUNCY_CONFIG"

const configFileName = "config.yaml"

// Load builds the effective config: defaults, then the first config file
// found, then flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath returns the config file to read, or "" to run on
// defaults. An explicit path is returned even if it does not exist so that
// the caller reports it.
func resolveConfigPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	for _, p := range []string{configFileName, filepath.Join(ConfigDir(), configFileName)} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for the demo.
func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "Bouncy")
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Bouncy")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bouncy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bouncy")
}

// loadFromFile decodes a YAML file over cfg. Keys missing from the file keep
// their current values; unknown keys are an error so typos do not pass
// silently. An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
