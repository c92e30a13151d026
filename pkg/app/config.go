package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-application configuration file.
const ConfigFileName = "boreal.yaml"

// Config represents the optional boreal.yaml configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Resources ResourcesConfig `yaml:"resources"`
	Tasks     TasksConfig     `yaml:"tasks"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ResourcesConfig locates UI documents.
type ResourcesConfig struct {
	// Path is the bundled resources directory.
	Path string `yaml:"path,omitempty"`
	// CustomPath is the override directory checked before Path.
	CustomPath string `yaml:"customPath,omitempty"`
}

// TasksConfig tunes the background task worker.
type TasksConfig struct {
	// PollIntervalMs is how long the worker sleeps between async queue
	// polls, in milliseconds. Zero keeps the default.
	PollIntervalMs int `yaml:"pollIntervalMs,omitempty"`
}

// LoadConfig reads boreal.yaml from dir if present. A missing file yields
// the zero Config; a malformed file is an error.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	return &cfg, nil
}
