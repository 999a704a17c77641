// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
)

// errNoSettingsService is reported when the view has no settings service.
var errNoSettingsService = errors.New("settings service not available")

// Item identifies a row of the settings list.
type Item int

// Settings rows in display order.
const (
	ItemLocation Item = iota
	ItemTopN
	ItemSuggestLimit
	ItemWatch
	ItemColor
	itemCount
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	saved    bool

	selected      int
	editing       bool
	locationInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	locationInput := textinput.New()
	locationInput.Placeholder = "data/plants.csv, sqlite://plants.db or postgres://..."
	locationInput.CharLimit = 512

	return &View{
		styles:          s,
		settingsService: settingsService,
		locationInput:   locationInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset returns to the list with nothing being edited.
func (v *View) Reset() {
	v.selected = 0
	v.editing = false
	v.saved = false
	v.err = nil
	v.locationInput.Blur()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: errNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// saveSettings returns a command that persists settings.
func (v *View) saveSettings(settings domain.AppSettings) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: errNoSettingsService}
		}
		return messages.SettingsSaved{Err: v.settingsService.Save(&settings)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.saved = true
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	if v.settings == nil {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < int(itemCount)-1 {
			v.selected++
		}
	case "left", "h", "-":
		return v, v.adjust(-1)
	case "right", "l", "+":
		return v, v.adjust(1)
	case keyEnter, " ":
		if Item(v.selected) == ItemLocation {
			v.editing = true
			v.locationInput.SetValue(v.settings.Catalog.Location)
			return v, v.locationInput.Focus()
		}
		return v, v.adjust(1)
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.locationInput.Blur()
		return v, nil
	case keyEnter:
		location := strings.TrimSpace(v.locationInput.Value())
		if location == "" {
			v.err = fmt.Errorf("%w: location must not be empty", domain.ErrInvalidInput)
			return v, nil
		}
		v.editing = false
		v.locationInput.Blur()
		next := *v.settings
		next.Catalog.Location = location
		return v, v.saveSettings(next)
	}

	var cmd tea.Cmd
	v.locationInput, cmd = v.locationInput.Update(msg)
	return v, cmd
}

// adjust changes the selected setting by one step and saves it.
func (v *View) adjust(delta int) tea.Cmd {
	next := *v.settings

	switch Item(v.selected) {
	case ItemLocation:
		return nil
	case ItemTopN:
		next.Catalog.TopN = clampPositive(next.Catalog.TopN + delta)
	case ItemSuggestLimit:
		next.Suggest.Limit = clampPositive(next.Suggest.Limit + delta)
	case ItemWatch:
		next.Catalog.Watch = !next.Catalog.Watch
	case ItemColor:
		next.Output.Color = cycleColor(next.Output.Color, delta)
	}

	v.saved = false
	return v.saveSettings(next)
}

func clampPositive(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func cycleColor(current domain.ColorMode, delta int) domain.ColorMode {
	modes := domain.AllColorModes()
	idx := 0
	for i, m := range modes {
		if m == current {
			idx = i
		}
	}
	idx = (idx + delta + len(modes)) % len(modes)
	return modes[idx]
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	b.WriteString(v.renderOverview())

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.locationInput.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.saved {
		b.WriteString(v.styles.Success.Render("Saved. Catalog changes apply on next start or reload."))
		b.WriteString("\n")
	}
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	watch := "off"
	if v.settings.Catalog.Watch {
		watch = "on"
	}

	items := []struct {
		label string
		value string
	}{
		{"Catalog location", v.settings.Catalog.Location},
		{"Top picks", fmt.Sprintf("%d", v.settings.Catalog.TopN)},
		{"Suggestions", fmt.Sprintf("%d", v.settings.Suggest.Limit)},
		{"Reload on change", watch},
		{"CLI colour", v.settings.Output.Color.Description()},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	if v.editing {
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[j/k] select  [←/→] change  [enter] edit/toggle  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the loaded settings, or nil.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Selected returns the selected row.
func (v *View) Selected() int {
	return v.selected
}

// Editing reports whether the location is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
