package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfig names a config file to use when -config is not given.
const EnvConfig = "ATLASTOOL_CONFIG"

// Config file names searched in the working directory, in order.
var localConfigNames = []string{"atlastool.yaml", "atlastool.yml"}

// Load resolves the import configuration: defaults, then the first config
// file found, then command-line flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := configSource()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// a stale search hit is not fatal
		case err != nil:
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configSource returns a path the user named, via -config or EnvConfig.
// Explicit paths must exist.
func configSource() (path string, explicit bool) {
	if p := ConfigPath(); p != "" {
		return p, true
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p, true
	}
	return "", false
}

// findConfigFile returns the first atlastool config in the working
// directory, falling back to the per-user file, or "" if none exists.
func findConfigFile() string {
	candidates := append([]string{}, localConfigNames...)
	candidates = append(candidates, filepath.Join(ConfigDir(), "config.yaml"))

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user directory holding atlastool's config.yaml.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || !filepath.IsAbs(base) {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "starling-atlas")
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled option such as "frame_rte" fails instead of being ignored. An
// empty file leaves cfg unchanged.
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
