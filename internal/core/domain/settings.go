package domain

const unknownDescription = "Unknown"

// Default data locations, relative to the working directory.
// The first existing one is used when no location is configured.
const (
	DefaultLocation         = "data/plants_data_new.csv"
	DefaultFallbackLocation = "data/plants.csv"
)

// ColorMode controls whether CLI output is coloured.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto colours output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways always colours output.
	ColorAlways ColorMode = "always"

	// ColorNever never colours output.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ColorMode) Description() string {
	switch m {
	case ColorAuto:
		return "Auto (colour when writing to a terminal)"
	case ColorAlways:
		return "Always"
	case ColorNever:
		return "Never"
	default:
		return unknownDescription
	}
}

// CatalogSettings holds catalog source configuration.
type CatalogSettings struct {
	// Location is the tabular source to load. A file path, a
	// sqlite:// location or a postgres:// connection string.
	Location string

	// TopN is how many records the "top picks" views show.
	TopN int

	// Watch enables reloading when the source file changes.
	Watch bool

	// DebounceMillis is how long to wait after a change before reloading.
	DebounceMillis int
}

// SuggestSettings holds fuzzy suggestion configuration.
type SuggestSettings struct {
	// Limit is the maximum number of suggestions.
	Limit int
}

// OutputSettings holds CLI output configuration.
type OutputSettings struct {
	// Color controls coloured output.
	Color ColorMode
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Catalog holds catalog source settings.
	Catalog CatalogSettings

	// Suggest holds suggestion settings.
	Suggest SuggestSettings

	// Output holds CLI output settings.
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			Location:       DefaultLocation,
			TopN:           DefaultTopN,
			Watch:          false,
			DebounceMillis: 300,
		},
		Suggest: SuggestSettings{
			Limit: 5,
		},
		Output: OutputSettings{
			Color: ColorAuto,
		},
	}
}

// AllColorModes returns all available colour modes.
func AllColorModes() []ColorMode {
	return []ColorMode{
		ColorAuto,
		ColorAlways,
		ColorNever,
	}
}
