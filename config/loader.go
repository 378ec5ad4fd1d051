package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ProjectConfigFile is the name of the project-level config file
const ProjectConfigFile = "site.yaml"

// Loader handles configuration discovery and loading
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads the configuration from the given path, or searches current and
// parent directories for site.yaml when path is empty.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		path = l.findProjectConfig()
		if path == "" {
			return nil, fmt.Errorf("no %s found in current or parent directories", ProjectConfigFile)
		}
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Loaded site config", slog.String("path", path))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// findProjectConfig searches for site.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
