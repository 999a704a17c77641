package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogLocation = "catalog.location"
	keyCatalogTopN     = "catalog.top_n"
	keyCatalogWatch    = "catalog.watch"
	keyCatalogDebounce = "catalog.debounce_ms"
	keySuggestLimit    = "suggest.limit"
	keyOutputColor     = "output.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	exists      func(path string) bool
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		exists:      fileExists,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Catalog: domain.CatalogSettings{
			Location:       s.getString(keyCatalogLocation, defaults.Catalog.Location),
			TopN:           s.getPositiveInt(keyCatalogTopN, defaults.Catalog.TopN),
			Watch:          s.getBool(keyCatalogWatch, defaults.Catalog.Watch),
			DebounceMillis: s.getPositiveInt(keyCatalogDebounce, defaults.Catalog.DebounceMillis),
		},
		Suggest: domain.SuggestSettings{
			Limit: s.getPositiveInt(keySuggestLimit, defaults.Suggest.Limit),
		},
		Output: domain.OutputSettings{
			Color: s.getColorMode(defaults.Output.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// An unset location keeps falling back between the default files.
	_, configured := s.configStore.Get(keyCatalogLocation)
	if configured || settings.Catalog.Location != domain.DefaultLocation {
		if err := s.configStore.Set(keyCatalogLocation, settings.Catalog.Location); err != nil {
			return fmt.Errorf("save catalog location: %w", err)
		}
	}
	if err := s.configStore.Set(keyCatalogTopN, settings.Catalog.TopN); err != nil {
		return fmt.Errorf("save catalog top_n: %w", err)
	}
	if err := s.configStore.Set(keyCatalogWatch, settings.Catalog.Watch); err != nil {
		return fmt.Errorf("save catalog watch: %w", err)
	}
	if err := s.configStore.Set(keyCatalogDebounce, settings.Catalog.DebounceMillis); err != nil {
		return fmt.Errorf("save catalog debounce_ms: %w", err)
	}
	if err := s.configStore.Set(keySuggestLimit, settings.Suggest.Limit); err != nil {
		return fmt.Errorf("save suggest limit: %w", err)
	}
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color.String()); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// SetLocation updates the catalog source location.
func (s *SettingsService) SetLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return fmt.Errorf("%w: location is empty", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Catalog.Location = location
	return s.Save(settings)
}

// SetColorMode updates the CLI colour mode.
func (s *SettingsService) SetColorMode(mode domain.ColorMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: colour mode %q", domain.ErrInvalidInput, mode)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Color = mode
	return s.Save(settings)
}

// ResolveLocation returns the configured location. Without one it returns
// the first default location that exists, or the primary default.
func (s *SettingsService) ResolveLocation() string {
	if location := strings.TrimSpace(s.configStore.GetString(keyCatalogLocation)); location != "" {
		return location
	}

	for _, candidate := range []string{domain.DefaultLocation, domain.DefaultFallbackLocation} {
		if s.exists(candidate) {
			logger.Debug("Using default location %q", candidate)
			return candidate
		}
	}
	return domain.DefaultLocation
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	val := s.configStore.GetString(keyOutputColor)
	if val == "" {
		return defaultVal
	}
	mode := domain.ColorMode(strings.ToLower(val))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
