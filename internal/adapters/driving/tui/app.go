package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// historyPageSize is how many reports the history view loads.
const historyPageSize = 50

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input     *input.EquationInput
	history   *list.HistoryList
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// display is seeded from settings and toggled in place.
	display domain.DisplaySettings

	// report is the last solve shown in the result pane.
	report *domain.Report

	// err holds the last error that occurred.
	err error

	solving bool

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
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		input:       input.NewEquationInput(s),
		history:     list.NewHistoryList(s, km),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewSolve,
		display:     ports.display(),
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("computor"),
		a.input.Init(),
		a.waitForSettings(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SolveCompleted:
		a.applySolve(msg)
		return a, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.history.SetReports(msg.Reports)
		if a.currentView == messages.ViewHistory {
			a.statusBar.SetState(status.StateHistory)
			a.statusBar.SetMessage(fmt.Sprintf("%d entries", len(msg.Reports)))
		}
		return a, nil

	case messages.SettingsChanged:
		a.display = a.ports.display()
		logger.Debug("TUI display settings reloaded")
		return a, a.waitForSettings()

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		if msg.Err != nil {
			a.statusBar.SetMessage(msg.Err.Error())
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other input-level messages.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}
	if keymap.Matches(k, a.keymap.Help) {
		if a.currentView == messages.ViewHelp {
			return a, a.switchView(messages.ViewSolve)
		}
		return a, a.switchView(messages.ViewHelp)
	}

	switch a.currentView {
	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) {
			return a, a.switchView(messages.ViewSolve)
		}
		return a, nil

	case messages.ViewHistory:
		switch {
		case keymap.Matches(k, a.keymap.Back), keymap.Matches(k, a.keymap.History):
			return a, a.switchView(messages.ViewSolve)
		case keymap.Matches(k, a.keymap.Recall):
			if r := a.history.Selected(); r != nil {
				recalled := *r
				a.report = &recalled
				a.err = recalled.Failure.Err()
				a.input.SetValue(recalled.Input)
			}
			return a, a.switchView(messages.ViewSolve)
		}
		var cmd tea.Cmd
		a.history, cmd = a.history.Update(msg)
		return a, cmd

	case messages.ViewSolve:
		switch {
		case keymap.Matches(k, a.keymap.Solve):
			return a, a.solve()
		case keymap.Matches(k, a.keymap.History):
			return a, a.switchView(messages.ViewHistory)
		case keymap.Matches(k, a.keymap.Pretty):
			a.display.Pretty = !a.display.Pretty
			return a, nil
		case keymap.Matches(k, a.keymap.Clear):
			a.input.Reset()
			a.report = nil
			a.err = nil
			a.statusBar.Clear()
			return a, nil
		case keymap.Matches(k, a.keymap.Back):
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// switchView changes the active view and returns any command the new view
// needs to populate itself.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHistory && a.ports.History == nil {
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage("history is disabled")
		return nil
	}

	a.currentView = view
	switch view {
	case messages.ViewHistory:
		a.input.Blur()
		a.statusBar.SetState(status.StateHistory)
		a.statusBar.SetMessage("")
		return a.loadHistory()
	case messages.ViewHelp:
		a.input.Blur()
		a.statusBar.SetState(status.StateHelp)
		return nil
	case messages.ViewSolve:
		a.statusBar.Clear()
		return a.input.Focus()
	}
	return nil
}

func (a *App) solve() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.solving {
		return nil
	}

	a.solving = true
	a.statusBar.SetState(status.StateSolving)
	logger.Debug("TUI solving %q", text)

	solver := a.ports.Solver
	ctx := a.ctx
	return func() tea.Msg {
		report, err := solver.Solve(ctx, text, domain.SolveOptions{})
		return messages.SolveCompleted{Report: report, Err: err}
	}
}

func (a *App) applySolve(msg messages.SolveCompleted) {
	a.solving = false
	a.report = msg.Report
	a.err = msg.Err

	if msg.Err == nil {
		a.statusBar.SetState(status.StateSolved)
		a.statusBar.SetMessage("")
		if msg.Report != nil && msg.Report.Solution != nil {
			a.statusBar.SetMessage(list.Outcome(msg.Report))
		}
		return
	}

	a.statusBar.SetState(status.StateError)
	if kind := domain.FailureOf(msg.Err); kind != domain.FailureNone {
		a.statusBar.SetMessage(string(kind))
	} else {
		a.statusBar.SetMessage(msg.Err.Error())
	}
}

// waitForSettings blocks on the next settings change. It returns nil when
// no change source is wired.
func (a *App) waitForSettings() tea.Cmd {
	changes := a.ports.SettingsChanges
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.SettingsChanged{}
	}
}

func (a *App) loadHistory() tea.Cmd {
	svc := a.ports.History
	ctx := a.ctx
	return func() tea.Msg {
		reports, err := svc.List(ctx, historyPageSize)
		return messages.HistoryLoaded{Reports: reports, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewHistory:
		body = a.viewHistory()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.viewSolve()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("computor")+" "+a.styles.Muted.Render("polynomial solver"),
		"",
		body,
		"",
		a.statusBar.View(),
	)
}

func (a *App) viewSolve() string {
	sections := []string{a.input.View()}
	if result := a.viewResult(); result != "" {
		sections = append(sections, "", a.styles.Panel.Render(result))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewResult() string {
	if a.report == nil {
		if a.err != nil {
			return a.styles.Error.Render(a.err.Error())
		}
		return ""
	}

	sum := render.Summarize(a.report, a.display)
	var lines []string
	if sum.Equation != "" {
		lines = append(lines,
			a.styles.Muted.Render("Reduced form: ")+a.styles.Equation.Render(sum.Equation),
			a.styles.Muted.Render(fmt.Sprintf("Polynomial degree: %d", sum.Degree)),
		)
	}
	if sum.Discriminant != "" {
		lines = append(lines, a.styles.Muted.Render("Discriminant: "+sum.Discriminant))
	}
	if sum.Headline != "" {
		lines = append(lines, a.styles.Normal.Render(sum.Headline))
	}
	for _, r := range sum.Roots {
		lines = append(lines, a.styles.Root.Render(r))
	}
	if sum.Failure != "" {
		lines = append(lines, a.styles.Error.Render(sum.Failure))
	} else if a.err != nil && domain.FailureOf(a.err) == domain.FailureNone {
		lines = append(lines, a.styles.Error.Render(a.err.Error()))
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewHistory() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Subtitle.Render("History"),
		"",
		a.history.View(),
	)
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("Equations look like: 5 * X^0 + 4 * X^1 = 4 * X^0"))
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

// Report returns the report shown in the result pane.
func (a *App) Report() *domain.Report {
	return a.report
}

// Input returns the current equation text.
func (a *App) Input() string {
	return a.input.Value()
}

// Display returns the active display settings.
func (a *App) Display() domain.DisplaySettings {
	return a.display
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
	a.input.SetWidth(width)
	a.statusBar.SetWidth(width)
	// header, input, spacing and status bar
	a.history.SetSize(width, height-8)
}
