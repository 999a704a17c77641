package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.Len(t, view.Items(), 5)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())
	assert.Equal(t, "No catalog loaded yet", view.CatalogLine())

	for _, item := range view.Items() {
		assert.NotEmpty(t, item.Key, item.Label)
		assert.NotEmpty(t, item.Description, item.Label)
	}
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)
	up := tea.KeyMsg{Type: tea.KeyUp}

	for i := 0; i < 10; i++ {
		view.Update(runes("j"))
	}
	assert.Equal(t, 4, view.Selected())

	view.Update(up)
	assert.Equal(t, 3, view.Selected())

	for i := 0; i < 10; i++ {
		view.Update(up)
	}
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter(t *testing.T) {
	tests := []struct {
		selected int
		want     messages.ViewType
	}{
		{0, messages.ViewTop},
		{1, messages.ViewLibrary},
		{2, messages.ViewSettings},
		{3, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.selected

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.want}, cmd())
		})
	}
}

func TestView_Update_Shortcuts(t *testing.T) {
	tests := []struct {
		key      string
		want     messages.ViewType
		selected int
	}{
		{"t", messages.ViewTop, 0},
		{"l", messages.ViewLibrary, 1},
		{"s", messages.ViewSettings, 2},
		{"?", messages.ViewHelp, 3},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			view := NewView(nil)

			_, cmd := view.Update(runes(tt.key))

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.want}, cmd())
			assert.Equal(t, tt.selected, view.Selected())
		})
	}
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = NewView(nil).Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Update_UnknownKey(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, view.Selected())
}

func TestView_CatalogLine(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.CatalogStats
		want  string
	}{
		{
			"loaded",
			domain.CatalogStats{LoadID: "a", Location: "data/plants.csv", Loaded: 40, SourceAvailable: true},
			"40 plants from data/plants.csv",
		},
		{
			"loaded with skips",
			domain.CatalogStats{LoadID: "a", Location: "data/plants.csv", Loaded: 40, Skipped: 2, SourceAvailable: true},
			"40 plants from data/plants.csv (2 rows skipped)",
		},
		{
			"unavailable",
			domain.CatalogStats{LoadID: "a", Location: "missing.csv"},
			"Catalog source unavailable: missing.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(nil)
			view.SetCatalog(tt.stats)

			assert.Equal(t, tt.want, view.CatalogLine())
		})
	}
}

func TestView_View(t *testing.T) {
	view := NewView(nil)
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(80, 24)
	view.SetCatalog(domain.CatalogStats{LoadID: "a", Location: "plants.csv", Loaded: 3, SourceAvailable: true})
	output := view.View()

	assert.Contains(t, output, "leafdex")
	assert.Contains(t, output, "Indoor plant catalogue")
	assert.Contains(t, output, "3 plants from plants.csv")
	assert.Contains(t, output, "> [t] Top picks")
	assert.Contains(t, output, "Highest-rated plants")
	assert.Contains(t, output, "[q] Quit")
	assert.NotContains(t, output, "Every plant by name")
}
