package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/views/details"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView     *menu.View
	topView      *catalog.View
	libraryView  *catalog.View
	detailsView  *details.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// lastReload holds the stats of the last reload done from the TUI.
	lastReload *domain.CatalogStats

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		topView:      catalog.NewView(s, nil, messages.ViewTop, ports.Catalog, ports.Settings),
		libraryView:  catalog.NewView(s, nil, messages.ViewLibrary, ports.Catalog, ports.Settings),
		detailsView:  details.NewView(s),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}
	app.menuView.SetCatalog(ports.Catalog.Stats())
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.topView.WithContext(ctx)
	a.libraryView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("leafdex - Indoor Plants"),
	)
}

// catalogView returns the catalog tab for view, or nil.
func (a *App) catalogView(view messages.ViewType) *catalog.View {
	switch view {
	case messages.ViewTop:
		return a.topView
	case messages.ViewLibrary:
		return a.libraryView
	default:
		return nil
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.SearchDebounced:
		if v := a.catalogView(msg.View); v != nil {
			_, cmd = v.Update(msg)
		}
		return a, cmd

	case messages.ResultsLoaded:
		if v := a.catalogView(msg.View); v != nil {
			_, cmd = v.Update(msg)
		}
		return a, cmd

	case messages.RecordSelected:
		a.detailsView.SetRecord(msg.Record, msg.From)
		a.currentView = messages.ViewDetails
		return a, nil

	case messages.CatalogReloaded:
		stats := msg.Stats
		a.lastReload = &stats
		a.err = nil
		a.menuView.SetCatalog(stats)
		return a, tea.Batch(a.topView.Refresh(), a.libraryView.Refresh())

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewTop, messages.ViewLibrary:
			return a, a.catalogView(msg.View).Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu:
			a.menuView.SetCatalog(a.ports.Catalog.Stats())
		case messages.ViewDetails, messages.ViewHelp:
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if v := a.catalogView(a.currentView); v != nil {
			_, cmd = v.Update(msg)
		}
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		_, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewTop:
		a.topView, cmd = a.topView.Update(msg)
	case messages.ViewLibrary:
		a.libraryView, cmd = a.libraryView.Update(msg)
	case messages.ViewDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewTop:
		return a.withReload(a.topView.View())
	case messages.ViewLibrary:
		return a.withReload(a.libraryView.View())
	case messages.ViewDetails:
		return a.detailsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// withReload appends the outcome of the last reload to a catalog tab.
func (a *App) withReload(view string) string {
	if a.lastReload == nil {
		return view
	}
	s := a.lastReload
	line := fmt.Sprintf("Reloaded %d plants from %s", s.Loaded, s.Location)
	if s.Skipped > 0 {
		line += fmt.Sprintf(" (%d rows skipped)", s.Skipped)
	}
	if !s.SourceAvailable {
		return view + "\n" + a.styles.Error.Render("Catalog source unavailable: "+s.Location)
	}
	return view + "\n" + a.styles.Muted.Render(line)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  t/l/s/?     Top picks, Library, Settings, Help
  q           Quit

Top picks / Library:
  (type)      Filter plants by name
  tab         Switch tab
  enter, ↓    Move to the list
  /           Back to the filter
  ctrl+r      Reload the catalog
  esc         Back to Menu

List:
  j/k, ↑/↓    Navigate plants
  enter       Show plant details

Details:
  j/k, ↑/↓    Scroll
  esc         Back to the list

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Details returns the details view.
func (a *App) Details() *details.View {
	return a.detailsView
}

// Tab returns the catalog tab for view, or nil.
func (a *App) Tab(view messages.ViewType) *catalog.View {
	return a.catalogView(view)
}

// LastReload returns the stats of the last reload done from the TUI.
func (a *App) LastReload() *domain.CatalogStats {
	return a.lastReload
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.topView.SetDimensions(width, height)
	a.libraryView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
