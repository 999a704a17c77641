// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// Item is one entry of the menu.
type Item struct {
	Label       string
	Description string
	// Key jumps straight to the entry.
	Key  string
	View messages.ViewType
	Quit bool
}

// View is the start screen: what is loaded and where to go.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int

	catalog domain.CatalogStats

	width  int
	height int
	ready  bool
}

// NewView creates the menu.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Top picks", Description: "Highest-rated plants, or search them", Key: "t", View: messages.ViewTop},
			{Label: "Library", Description: "Every plant by name", Key: "l", View: messages.ViewLibrary},
			{Label: "Settings", Description: "Catalog location, list sizes and colour", Key: "s", View: messages.ViewSettings},
			{Label: "Help", Description: "Keys for every screen", Key: "?", View: messages.ViewHelp},
			{Label: "Quit", Description: "Leave leafdex", Key: "q", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCatalog sets the stats shown in the catalog summary line.
func (v *View) SetCatalog(stats domain.CatalogStats) {
	v.catalog = stats
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil
		case "enter":
			return v, choose(v.items[v.selected])
		}

		for i, item := range v.items {
			if msg.String() == item.Key {
				v.selected = i
				return v, choose(item)
			}
		}
	}

	return v, nil
}

func choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// CatalogLine describes the loaded catalog for the header.
func (v *View) CatalogLine() string {
	c := v.catalog
	switch {
	case c.LoadID == "":
		return "No catalog loaded yet"
	case !c.SourceAvailable:
		return "Catalog source unavailable: " + c.Location
	}
	line := fmt.Sprintf("%d plants from %s", c.Loaded, c.Location)
	if c.Skipped > 0 {
		line += fmt.Sprintf(" (%d rows skipped)", c.Skipped)
	}
	return line
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("leafdex"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render("Indoor plant catalogue"))
	b.WriteString("\n")

	if v.catalog.LoadID != "" && !v.catalog.SourceAvailable {
		b.WriteString(v.styles.Error.Render(v.CatalogLine()))
	} else {
		b.WriteString(v.styles.Subtitle.Render(v.CatalogLine()))
	}
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("[%s] %s", item.Key, item.Label)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + label))
			b.WriteString("  ")
			b.WriteString(v.styles.Muted.Render(item.Description))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] move  [enter] open  or press the key in brackets"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
