// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// SearchDebounced fires once typing has paused. Only the message whose
// Seq matches the view's latest keystroke triggers a search.
type SearchDebounced struct {
	View ViewType
	Seq  int
}

// ResultsLoaded carries query results back to a catalog view.
type ResultsLoaded struct {
	View        ViewType
	Query       string
	Records     []domain.Record
	Suggestions []string

	// Catalog describes the catalog the query ran against.
	Catalog domain.CatalogStats
}

// RecordSelected is sent when a plant is opened from a list.
type RecordSelected struct {
	Record domain.Record
	From   ViewType
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTop is the "Top picks" tab.
	ViewTop
	// ViewLibrary is the "Library" tab listing every plant.
	ViewLibrary
	// ViewDetails shows a single plant.
	ViewDetails
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTop:
		return "top"
	case ViewLibrary:
		return "library"
	case ViewDetails:
		return "details"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// CatalogReloaded carries the stats of a reload requested from the TUI.
type CatalogReloaded struct {
	Stats domain.CatalogStats
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
