// Package config loads apimap configuration from a YAML file, merging it
// with defaults and validating the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the apimap configuration file.
const ConfigFileName = ".apimap.yaml"

// Config holds all apimap configuration.
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// ScanConfig holds configuration for source discovery.
type ScanConfig struct {
	// Exclude lists doublestar globs matched against paths relative to the
	// scan root. Build-output directories (bin, obj) are always excluded.
	Exclude []string `yaml:"exclude"`
}

// OutputConfig holds configuration for artifact output.
type OutputConfig struct {
	// Format is the artifact format: text or json.
	Format string `yaml:"format"`
	// Dir is the directory artifacts are written to.
	Dir string `yaml:"dir"`
	// Index enables the SQLite surface index alongside the artifacts.
	Index bool `yaml:"index"`
}

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config for the given directory, searching for .apimap.yaml
// starting at startDir and walking up the directory tree. If no config file
// is found, defaults are returned.
func Load(startDir string) (*Config, error) {
	path, err := findConfigFile(startDir)
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads config from a specific path, merging loaded values with
// defaults and validating the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, Default())
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// findConfigFile walks up from startDir looking for the config file.
func findConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
