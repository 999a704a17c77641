// Package catalog provides the "Top picks" and "Library" views for the TUI.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
)

// DebounceInterval is how long typing must pause before the list is
// filtered.
const DebounceInterval = 150 * time.Millisecond

// ErrNoCatalogService indicates that no catalog service was provided.
var ErrNoCatalogService = errors.New("catalog service is required")

// View is one catalog tab: a search input over a list of plants.
//
// The Top picks tab shows the highest-rated plants until a query is
// typed, then every match in catalog order. The Library tab shows every
// plant by name until a query is typed.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecordList
	statusbar *status.Bar

	catalog  driving.CatalogService
	settings driving.SettingsService
	ctx      context.Context

	tab         messages.ViewType
	seq         int
	query       string
	suggestions []string

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a catalog tab. tab is messages.ViewTop or
// messages.ViewLibrary.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	tab messages.ViewType,
	catalog driving.CatalogService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	placeholder := "Search library..."
	if tab == messages.ViewTop {
		placeholder = "Search top recommendations..."
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s, placeholder),
		list:       list.NewRecordList(s),
		statusbar:  status.NewBar(s, km),
		catalog:    catalog,
		settings:   settings,
		ctx:        context.Background(),
		tab:        tab,
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the input and fills the list.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetLoading()
	return tea.Batch(v.input.Init(), v.Refresh())
}

// Refresh re-runs the current query against the catalog.
func (v *View) Refresh() tea.Cmd {
	query := v.input.Value()
	return func() tea.Msg {
		return v.runQuery(query)
	}
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchDebounced:
		if msg.View != v.tab || msg.Seq != v.seq {
			return v, nil
		}
		v.statusbar.SetFiltering()
		return v, v.Refresh()

	case messages.ResultsLoaded:
		if msg.View == v.tab && msg.Query == v.input.Value() {
			v.setResults(msg)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(msg.String(), v.keymap.NextTab):
		next := messages.ViewLibrary
		if v.tab == messages.ViewLibrary {
			next = messages.ViewTop
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: next}
		}
	case keymap.Matches(msg.String(), v.keymap.Reload):
		return v, v.reload()
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Select):
		record := v.list.SelectedRecord()
		if record == nil {
			return v, nil
		}
		selected, from := *record, v.tab
		return v, func() tea.Msg {
			return messages.RecordSelected{Record: selected, From: from}
		}
	case keymap.Matches(msg.String(), v.keymap.Filter):
		v.focusInput = true
		return v, v.input.Focus()
	case msg.String() == "q":
		return v, tea.Quit
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// handleInputKey handles typing. Each change restarts the debounce timer.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Browse) {
		if !v.list.IsEmpty() {
			v.focusInput = false
			v.input.Blur()
		}
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}

	v.seq++
	seq, tab := v.seq, v.tab
	debounce := tea.Tick(DebounceInterval, func(time.Time) tea.Msg {
		return messages.SearchDebounced{View: tab, Seq: seq}
	})
	return v, tea.Batch(cmd, debounce)
}

// reload reloads the catalog from its source.
func (v *View) reload() tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ErrorOccurred{Err: ErrNoCatalogService}
		}
		return messages.CatalogReloaded{Stats: v.catalog.Reload(v.ctx)}
	}
}

// runQuery answers query the way this tab presents the catalog.
func (v *View) runQuery(query string) tea.Msg {
	if v.catalog == nil {
		return messages.ErrorOccurred{Err: ErrNoCatalogService}
	}

	settings := v.currentSettings()
	trimmed := strings.TrimSpace(query)

	var records []domain.Record
	switch {
	case v.tab == messages.ViewLibrary:
		records = v.catalog.SearchAll(query)
	case trimmed == "":
		records = v.catalog.TopN(settings.Catalog.TopN)
	default:
		records = v.catalog.Search(query)
	}

	var suggestions []string
	if len(records) == 0 && trimmed != "" {
		suggestions = v.catalog.Suggest(query, settings.Suggest.Limit)
	}

	return messages.ResultsLoaded{
		View:        v.tab,
		Query:       query,
		Records:     records,
		Suggestions: suggestions,
		Catalog:     v.catalog.Stats(),
	}
}

func (v *View) currentSettings() domain.AppSettings {
	if v.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := v.settings.Get()
	if err != nil {
		return v.settings.GetDefaults()
	}
	return *settings
}

// setResults shows loaded records and the matching status line.
func (v *View) setResults(msg messages.ResultsLoaded) {
	v.err = nil
	v.query = msg.Query
	v.suggestions = msg.Suggestions
	v.list.SetRecords(msg.Records)

	v.statusbar.SetCatalog(msg.Catalog)
	v.statusbar.SetResults(msg.Query, len(msg.Records), v.tab == messages.ViewTop)
}

// View renders the catalog tab.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	sections = append(sections, v.renderTabs(), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if len(v.suggestions) > 0 {
		sections = append(sections,
			v.styles.Muted.Render("Did you mean: ")+v.styles.Subtitle.Render(strings.Join(v.suggestions, ", ")),
			"")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTabs() string {
	tabs := []struct {
		label string
		view  messages.ViewType
	}{
		{"Top picks", messages.ViewTop},
		{"Library", messages.ViewLibrary},
	}

	rendered := make([]string, 0, len(tabs)+1)
	rendered = append(rendered, v.styles.Title.Render("leafdex")+"  ")
	for _, t := range tabs {
		if t.view == v.tab {
			rendered = append(rendered, v.styles.TabActive.Render(t.label))
		} else {
			rendered = append(rendered, v.styles.TabInactive.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Tab returns which tab this view is.
func (v *View) Tab() messages.ViewType {
	return v.tab
}

// Query returns the query of the displayed results.
func (v *View) Query() string {
	return v.query
}

// SetQuery sets the input text without triggering a search.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Records returns the displayed records.
func (v *View) Records() []domain.Record {
	return v.list.Records()
}

// Suggestions returns the names suggested for a query with no matches.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// Seq returns the number of input changes so far.
func (v *View) Seq() int {
	return v.seq
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
