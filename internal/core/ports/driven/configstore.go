package driven

import "github.com/custodia-labs/docqa-cli/internal/core/domain"

// ConfigStore loads persisted configuration.
type ConfigStore interface {
	// Settings returns the effective settings: file values merged over
	// defaults.
	Settings() (domain.Settings, error)

	// Path returns the location of the backing config file.
	Path() string
}
