package driving

import "github.com/custodia-labs/computor-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a single dot-notation key and persists it.
	Set(key, value string) error

	// Reset restores a single key to its default.
	Reset(key string) error

	// Keys returns every settable key in display order.
	Keys() []string
}
