package driving

import "github.com/custodia-labs/leafdex/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLocation updates the catalog source location.
	SetLocation(location string) error

	// SetColorMode updates the CLI colour mode.
	SetColorMode(mode domain.ColorMode) error

	// ResolveLocation returns the location to load: the configured one,
	// or the first default location that exists.
	ResolveLocation() string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
