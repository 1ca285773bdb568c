package driving

import "github.com/custodia-labs/storefront-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling gaps with defaults.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetAPIBaseURL updates the REST API root.
	SetAPIBaseURL(url string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
