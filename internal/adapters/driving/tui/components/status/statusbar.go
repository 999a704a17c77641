// Package status provides the status line shown under the catalog tabs.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// Mode is what the bar is currently reporting.
type Mode int

// Bar modes.
const (
	ModeLoading Mode = iota
	ModeFiltering
	ModeResults
	ModeError
)

// Bar reports the outcome of the last query, the size of the loaded
// catalog and the keys that apply.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	mode  Mode
	err   error
	query string
	count int
	top   bool

	catalog domain.CatalogStats
}

// NewBar creates a status bar.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
		mode:   ModeLoading,
	}
}

// SetLoading shows that the first results are pending.
func (s *Bar) SetLoading() {
	s.mode = ModeLoading
	s.err = nil
}

// SetFiltering shows that a query is being applied.
func (s *Bar) SetFiltering() {
	s.mode = ModeFiltering
	s.err = nil
}

// SetResults records the outcome of a query. top is true when an empty
// query lists the highest-rated plants rather than the whole library.
func (s *Bar) SetResults(query string, count int, top bool) {
	s.mode = ModeResults
	s.err = nil
	s.query = strings.TrimSpace(query)
	s.count = count
	s.top = top
}

// SetError shows err until the next results arrive.
func (s *Bar) SetError(err error) {
	s.mode = ModeError
	s.err = err
}

// SetCatalog records the stats of the catalog being queried.
func (s *Bar) SetCatalog(stats domain.CatalogStats) {
	s.catalog = stats
}

// Summary returns the text describing the last query.
func (s *Bar) Summary() string {
	switch s.mode {
	case ModeFiltering:
		return "Filtering..."
	case ModeError:
		if s.err != nil {
			return "Error: " + s.err.Error()
		}
		return "Error"
	case ModeResults:
		switch {
		case s.query != "":
			return fmt.Sprintf("Found %d matches.", s.count)
		case s.top:
			return fmt.Sprintf("Top %d Recommendations", s.count)
		default:
			return fmt.Sprintf("%d plants", s.count)
		}
	}
	return "Loading plants..."
}

// CatalogSummary describes the loaded catalog, or returns "" before any
// load has been reported.
func (s *Bar) CatalogSummary() string {
	c := s.catalog
	if c.LoadID == "" {
		return ""
	}
	if !c.SourceAvailable {
		return "no catalog loaded"
	}
	text := fmt.Sprintf("%d in catalog", c.Loaded)
	if c.Skipped > 0 {
		text += fmt.Sprintf(", %d rows skipped", c.Skipped)
	}
	return text
}

// View renders the bar. Key hints are dropped when they do not fit.
func (s *Bar) View() string {
	left := s.renderSummary()
	if catalog := s.CatalogSummary(); catalog != "" {
		left += s.styles.Muted.Render("  ·  " + catalog)
	}

	right := s.renderHints()
	// The bar style pads one cell on each side.
	padding := s.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		right = ""
		padding = 1
	}

	return s.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

func (s *Bar) renderSummary() string {
	text := s.Summary()
	switch s.mode {
	case ModeError:
		return s.styles.Error.Render(text)
	case ModeResults:
		if s.count == 0 {
			return s.styles.Warning.Render(text)
		}
		return s.styles.Normal.Render(text)
	}
	return s.styles.Muted.Render(text)
}

func (s *Bar) renderHints() string {
	bindings := s.keymap.ShortHelp()
	if s.mode == ModeResults && s.count > 0 {
		bindings = s.keymap.ResultsHelp()
	}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hintText(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hintText(b key.Binding) string {
	h := b.Help()
	return h.Key + ": " + h.Desc
}

// Mode returns what the bar is reporting.
func (s *Bar) Mode() Mode {
	return s.mode
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the bar width.
func (s *Bar) Width() int {
	return s.width
}
