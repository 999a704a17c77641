// Package details provides the plant details view for the TUI.
package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// View shows one plant.
type View struct {
	styles *styles.Styles

	record       *domain.Record
	back         messages.ViewType
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a new plant details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		back:   messages.ViewTop,
	}
}

// SetRecord sets the plant to display and the view esc returns to.
func (v *View) SetRecord(record domain.Record, back messages.ViewType) {
	v.record = &record
	v.back = back
	v.scrollOffset = 0
}

// Record returns the displayed plant, or nil.
func (v *View) Record() *domain.Record {
	return v.record
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc", "enter", "backspace":
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.record == nil {
		return nil
	}
	r := v.record

	lines := []string{
		v.field("Scientific name", r.ScientificName),
		v.field("Plant ID", r.ID),
		v.styles.Subtitle.Render("Rating: ") +
			v.styles.Stars.Render(list.Stars(r.Stars())) +
			v.styles.Normal.Render(fmt.Sprintf(" %.1f / 5", r.Rating)),
		"",
		v.measurement("Oxygen release", r.O2()),
		v.measurement("CO2 absorption", r.CO2()),
		"",
		v.styles.Subtitle.Render("Description"),
	}

	width := v.width - 4
	if width < 20 {
		width = 20
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(r.Description)
	lines = append(lines, strings.Split(wrapped, "\n")...)

	return lines
}

func (v *View) field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return v.styles.Subtitle.Render(label+": ") + v.styles.Normal.Render(value)
}

func (v *View) measurement(label string, m domain.Measurement) string {
	value := m.Raw
	if value == "" {
		value = "-"
	}
	return v.styles.Subtitle.Render(label+": ") +
		v.styles.Normal.Render(value+" ") +
		v.styles.Tier(m.Tier).Render("["+m.Tier.String()+"]")
}

// View renders the details view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.record == nil {
		return v.styles.Muted.Render("No plant selected") + "\n\n" +
			v.styles.Help.Render("[esc] back")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.record.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(strings.Repeat("─", min(v.width, 60))))
	b.WriteString("\n\n")

	lines := v.buildContent()
	end := v.scrollOffset + v.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[v.scrollOffset:end], "\n"))

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] scroll  [esc] back  [q] quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// ScrollOffset returns the current scroll offset.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
