package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchInput(t *testing.T) {
	in := NewSearchInput(nil, "")

	require.NotNil(t, in)
	assert.True(t, in.Focused())
	assert.Equal(t, "Search plants...", in.textinput.Placeholder)
	assert.Equal(t, 128, in.textinput.CharLimit)
	assert.NotNil(t, in.Init())
}

func TestNewSearchInput_Placeholder(t *testing.T) {
	in := NewSearchInput(nil, "Search library...")

	assert.Equal(t, "Search library...", in.textinput.Placeholder)
}

func TestSearchInput_Typing(t *testing.T) {
	in := NewSearchInput(nil, "")

	in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fern")})

	assert.Equal(t, "fern", in.Value())
}

func TestSearchInput_SetValueAndReset(t *testing.T) {
	in := NewSearchInput(nil, "")

	in.SetValue("lily")
	assert.Equal(t, "lily", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	in := NewSearchInput(nil, "")

	in.Blur()
	assert.False(t, in.Focused())

	in.Focus()
	assert.True(t, in.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	in := NewSearchInput(nil, "")

	in.SetWidth(100)
	assert.Equal(t, 100, in.Width())
	assert.Equal(t, 90, in.textinput.Width)

	in.SetWidth(15)
	assert.Equal(t, 20, in.textinput.Width)
}

func TestSearchInput_View(t *testing.T) {
	in := NewSearchInput(nil, "")

	assert.Contains(t, in.View(), "Search: ")
}
