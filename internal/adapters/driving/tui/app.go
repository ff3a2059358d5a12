package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/views/cutter"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/tui/views/validate"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	cutterView   *cutter.View
	validateView *validate.View
	statusBar    *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s),
		cutterView:   cutter.NewView(s, ports.Cutter),
		validateView: validate.NewView(s, ports.Punctuation.NewSession()),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.validateView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("marcassist")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView != messages.ViewMenu {
			if keymap.Matches(msg.String(), a.keymap.Back) {
				return a, a.switchTo(messages.ViewMenu)
			}
			if msg.Type == tea.KeyF1 {
				return a, a.switchTo(messages.ViewHelp)
			}
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewCutter:
			a.cutterView, cmd = a.cutterView.Update(msg)
			a.syncStatus()
		case messages.ViewValidate:
			a.validateView, cmd = a.validateView.Update(msg)
		case messages.ViewHelp:
			if msg.String() == "q" {
				return a, tea.Quit
			}
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ValidationCompleted, messages.RulesReloaded, messages.WarningsCleared:
		a.validateView, cmd = a.validateView.Update(msg)
		a.err = a.validateView.Err()
		a.syncStatus()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the active view
	switch a.currentView {
	case messages.ViewCutter:
		a.cutterView, cmd = a.cutterView.Update(msg)
	case messages.ViewValidate:
		a.validateView, cmd = a.validateView.Update(msg)
	case messages.ViewMenu, messages.ViewHelp:
	}
	return a, cmd
}

// switchTo activates view and initialises it.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.err = nil
	a.statusBar.Clear()

	var cmd tea.Cmd
	switch view {
	case messages.ViewCutter:
		a.statusBar.SetState(status.StateCutter)
		a.statusBar.SetMessage(fmt.Sprintf("%d table entries", a.ports.Cutter.TableSize()))
		cmd = a.cutterView.Init()
	case messages.ViewValidate:
		a.validateView.Reset()
		a.statusBar.SetState(status.StateFindings)
		cmd = a.validateView.Init()
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewMenu:
	}
	a.syncStatus()
	return cmd
}

// syncStatus mirrors the active view into the status bar.
func (a *App) syncStatus() {
	switch a.currentView {
	case messages.ViewValidate:
		if a.err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(a.err.Error())
			return
		}
		a.statusBar.SetState(status.StateFindings)
		a.statusBar.SetCounts(len(a.validateView.Findings()), len(a.validateView.Warnings()))
	case messages.ViewCutter:
		if c := a.cutterView.Cutter(); c != "" {
			a.statusBar.SetMessage(fmt.Sprintf("%s  (tag %s)", c, a.cutterView.Tag()))
		}
	case messages.ViewMenu, messages.ViewHelp:
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewCutter:
		body = a.cutterView.View()
	case messages.ViewValidate:
		body = a.validateView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		return a.menuView.View()
	}

	// Pin the status bar to the bottom line
	lines := strings.Count(body, "\n") + 1
	if pad := a.height - lines - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("Cutter: type a heading; the number updates as you type.\n"))
	b.WriteString(a.styles.Muted.Render("Validate: use $ or the MARC delimiter before subfield codes.\n"))
	b.WriteString("\n[esc] back to menu")
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// StatusBar returns the status bar, for inspection in tests.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.cutterView.SetDimensions(width, height-1)
	a.validateView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
