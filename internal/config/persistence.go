// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the file name looked up in the home directory.
const DefaultConfigName = ".library-catalog"

// DefaultConfigFilePath returns $HOME/.library-catalog.yaml.
func DefaultConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigName+".yaml"), nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// LoadConfigFromFile reads a YAML config file. Keys missing from the file
// keep their defaults.
func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveConfigToFile writes cfg to path as YAML. An existing file is only
// replaced when overwrite is set.
func SaveConfigToFile(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
