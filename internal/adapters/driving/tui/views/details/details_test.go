package details

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

func snakePlant() domain.Record {
	return domain.Record{
		ID:             "7",
		Name:           "Snake Plant",
		ScientificName: "Dracaena trifasciata",
		O2Release:      "4.5",
		CO2Absorption:  "High",
		Description:    "Tolerates low light and irregular watering.",
		Rating:         4.8,
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.Nil(t, view.Record())
	assert.Nil(t, view.Init())
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)

	assert.Equal(t, "Initialising...", view.View())
}

func TestView_View_NoRecord(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 30)

	assert.Contains(t, view.View(), "No plant selected")
}

func TestView_View_Record(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 30)
	view.SetRecord(snakePlant(), messages.ViewLibrary)

	output := view.View()

	assert.Contains(t, output, "Snake Plant")
	assert.Contains(t, output, "Dracaena trifasciata")
	assert.Contains(t, output, "Plant ID")
	assert.Contains(t, output, "★★★★★")
	assert.Contains(t, output, "4.8 / 5")
	assert.Contains(t, output, "[best]")
	assert.Contains(t, output, "[good]")
	assert.Contains(t, output, "Tolerates low light")
}

func TestView_View_EmptyFields(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 30)
	view.SetRecord(domain.Record{Name: "Fern"}, messages.ViewTop)

	output := view.View()

	assert.Contains(t, output, "Oxygen release")
	assert.Contains(t, output, "[unknown]")
}

func TestView_Update_Back(t *testing.T) {
	view := NewView(nil)
	view.SetRecord(snakePlant(), messages.ViewLibrary)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyBackspace},
	} {
		_, cmd := view.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, messages.ViewChanged{View: messages.ViewLibrary}, cmd())
	}
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Scroll(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(40, 8)
	record := snakePlant()
	record.Description = strings.Repeat("leaf ", 80)
	view.SetRecord(record, messages.ViewTop)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	view.Update(down)
	assert.Equal(t, 2, view.ScrollOffset())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, view.ScrollOffset())

	for i := 0; i < 100; i++ {
		view.Update(down)
	}
	assert.Equal(t, view.maxScrollOffset(), view.ScrollOffset())

	view.SetRecord(snakePlant(), messages.ViewTop)
	assert.Equal(t, 0, view.ScrollOffset())
}

func TestView_Scroll_NoRecord(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 30)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 0, view.ScrollOffset())
}
