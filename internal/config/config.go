// Package config loads the optional per-project dirsum.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ScanConfig holds the scan defaults a project can pin in dirsum.yaml.
// CLI flags override every field.
type ScanConfig struct {
	Algorithm string `yaml:"algorithm,omitempty"`
	Match     string `yaml:"match,omitempty"`
	Exclude   string `yaml:"exclude,omitempty"`
	Recurse   *bool  `yaml:"recurse,omitempty"`
}

// ProjectConfig is the root of dirsum.yaml.
type ProjectConfig struct {
	Scan     ScanConfig `yaml:"scan"`
	Manifest string     `yaml:"manifest,omitempty"`
	Verbose  bool       `yaml:"verbose,omitempty"`
}

const ConfigFileName = "dirsum.yaml"

// Load reads dirsum.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
