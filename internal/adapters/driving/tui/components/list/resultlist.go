// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// linesPerRecord is how many lines renderRecord produces.
const linesPerRecord = 2

// RecordList displays plants in a navigable list.
type RecordList struct {
	records  []domain.Record
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		records:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.records) > 0 {
				r.selected = len(r.records) - 1
			}
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No plants")
	}

	visibleCount := r.height / linesPerRecord
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.records) {
		end = len(r.records)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, r.records[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single plant as a title line and a
// measurement line.
func (r *RecordList) renderRecord(index int, record domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := record.Name
	maxNameLen := r.width - 20
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len([]rune(name)) > maxNameLen {
		name = string([]rune(name)[:maxNameLen-3]) + "..."
	}

	stars := r.styles.Stars.Render(Stars(record.Stars()))

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator+name) + "  " + stars
	} else {
		titleLine = r.styles.Normal.Render(indicator+name) + "  " + stars
	}

	o2, co2 := record.O2(), record.CO2()
	detail := fmt.Sprintf("    %s  %s  %s",
		r.styles.Muted.Render(record.ScientificName),
		r.styles.Tier(o2.Tier).Render("O2 "+o2.Tier.String()),
		r.styles.Tier(co2.Tier).Render("CO2 "+co2.Tier.String()),
	)

	return titleLine + "\n" + detail
}

// Stars renders a 0-5 star count as filled and empty stars.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// SetRecords updates the list and resets the selection.
func (r *RecordList) SetRecords(records []domain.Record) {
	r.records = records
	r.selected = 0
}

// Records returns the current records.
func (r *RecordList) Records() []domain.Record {
	return r.records
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecordList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.Record {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RecordList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecordList) Height() int {
	return r.height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}
