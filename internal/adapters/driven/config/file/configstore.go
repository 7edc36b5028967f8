// Package file provides the TOML-backed configuration store. Settings are
// read once from the config directory and merged over built-in defaults.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore loads settings from a TOML file in the docqa config directory.
type ConfigStore struct {
	filePath string
	settings domain.Settings
}

// NewConfigStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.docqa. A missing config file is not
// an error; defaults apply.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %w", domain.ErrConfiguration, err)
		}
		configDir = filepath.Join(home, ".docqa")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating config directory: %w", domain.ErrConfiguration, err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: domain.DefaultSettings(),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// load merges the config file, if present, over the defaults.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading config file: %w", domain.ErrConfiguration, err)
	}

	if err := toml.Unmarshal(data, &s.settings); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", domain.ErrConfiguration, s.filePath, err)
	}

	if err := s.settings.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrConfiguration, s.filePath, err)
	}
	return nil
}

// Settings returns the effective settings.
func (s *ConfigStore) Settings() (domain.Settings, error) {
	return s.settings, nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
