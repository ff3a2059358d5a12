package driving

import "github.com/custodia-labs/marcassist/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Set parses and stores a single value by config key.
	// Unknown keys fail with domain.ErrNotFound.
	Set(key, value string) error

	// Keys lists the recognised config keys in display order.
	Keys() []string
}
