// Package config provides configuration loading and management for the
// vocabulary site builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete site build configuration
type Config struct {
	Site    SiteConfig     `yaml:"site"`
	Modules []ModuleConfig `yaml:"modules"`
	Watch   WatchConfig    `yaml:"watch"`
}

// SiteConfig configures the published vocabulary site
type SiteConfig struct {
	// Title is the site title shown on the generated index pages
	Title string `yaml:"title"`
	// BaseIRI is the IRI the vocabulary is published under
	BaseIRI string `yaml:"base_iri"`
	// OutputDir is the directory the site is written to
	OutputDir string `yaml:"output_dir"`
	// Version is the vocabulary version segment in output paths (e.g., "v4")
	Version string `yaml:"version"`
}

// ModuleConfig configures one vocabulary module to publish
type ModuleConfig struct {
	// Name is the module path segment under the version directory
	Name string `yaml:"name"`
	// Source is a glob matching the module's Turtle sources
	Source string `yaml:"source"`
}

// WatchConfig configures rebuild-on-change behavior
type WatchConfig struct {
	// Enabled turns on the filesystem watcher
	Enabled bool `yaml:"enabled"`
	// DebounceMillis is the quiet period before a rebuild triggers
	DebounceMillis int `yaml:"debounce_millis"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:     "Actions Vocabulary",
			BaseIRI:   "https://clearhead.us/vocab/actions",
			OutputDir: "site",
			Version:   "v4",
		},
		Watch: WatchConfig{
			Enabled:        false,
			DebounceMillis: 500,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Site.BaseIRI == "" {
		return fmt.Errorf("site.base_iri is required")
	}
	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}
	if c.Site.Version == "" {
		return fmt.Errorf("site.version is required")
	}
	if len(c.Modules) == 0 {
		return fmt.Errorf("at least one module is required")
	}
	seen := make(map[string]bool, len(c.Modules))
	for i, m := range c.Modules {
		if m.Name == "" {
			return fmt.Errorf("modules[%d].name is required", i)
		}
		if m.Source == "" {
			return fmt.Errorf("modules[%d].source is required", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate module name %q", m.Name)
		}
		seen[m.Name] = true
	}
	if c.Watch.DebounceMillis < 0 {
		return fmt.Errorf("watch.debounce_millis must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
