// ABOUTME: Configuration for drillbook input, output, and page title
// ABOUTME: Handles YAML config files in the working directory or XDG config path

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput  = "2025-26 B Red Practice Plan - Drills.csv"
	DefaultOutput = "hockey_drills.html"
	DefaultTitle  = "Hockey Drills Database"

	// LocalFile is looked up in the working directory before the XDG path.
	LocalFile = "drillbook.yaml"
)

// Config holds drillbook settings.
type Config struct {
	// Input is the CSV file to read.
	Input string `yaml:"input,omitempty"`

	// Output is the HTML file to write.
	Output string `yaml:"output,omitempty"`

	// Title is shown in the browser tab and page heading.
	Title string `yaml:"title,omitempty"`
}

// DefaultConfig returns a Config with the built-in file names.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Title:  DefaultTitle,
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "drillbook")
}

// ConfigPath returns the path to the user config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads path, or when path is empty the first of LocalFile and
// ConfigPath that exists. Missing files yield defaults; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, p := range []string{LocalFile, ConfigPath()} {
		cfg, err := loadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return DefaultConfig(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path is user-specified
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Title == "" {
		c.Title = d.Title
	}
}
