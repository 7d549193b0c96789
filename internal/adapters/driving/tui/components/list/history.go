// Package list provides list components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// HistoryList displays previous solves with keyboard navigation.
type HistoryList struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	reports  []domain.Report
	selected int
	offset   int
	height   int
	width    int
}

// NewHistoryList creates a new history list component.
func NewHistoryList(s *styles.Styles, km *keymap.KeyMap) *HistoryList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &HistoryList{
		styles: s,
		keymap: km,
		height: 10,
		width:  80,
	}
}

// Init initialises the list.
func (l *HistoryList) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (l *HistoryList) Update(msg tea.Msg) (*HistoryList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch {
	case keymap.Matches(keyMsg.String(), l.keymap.Up):
		l.MoveUp()
	case keymap.Matches(keyMsg.String(), l.keymap.Down):
		l.MoveDown()
	}
	return l, nil
}

// View renders the visible window of reports.
func (l *HistoryList) View() string {
	if len(l.reports) == 0 {
		return l.styles.Muted.Render("No solves recorded yet.")
	}

	var b strings.Builder
	end := l.offset + l.height
	if end > len(l.reports) {
		end = len(l.reports)
	}

	for i := l.offset; i < end; i++ {
		line := l.renderRow(&l.reports[i])
		if i == l.selected {
			b.WriteString(l.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(l.styles.Normal.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(l.reports) > l.height {
		b.WriteString("\n")
		b.WriteString(l.styles.Muted.Render(
			fmt.Sprintf("%d/%d", l.selected+1, len(l.reports)),
		))
	}

	return b.String()
}

func (l *HistoryList) renderRow(r *domain.Report) string {
	input := r.Input
	limit := l.width - 30
	if limit < 10 {
		limit = 10
	}
	if len(input) > limit {
		input = input[:limit-3] + "..."
	}
	return fmt.Sprintf("%s  %-*s  %s",
		r.CreatedAt.Format("01-02 15:04"), limit, input, Outcome(r))
}

// Outcome summarises a report in a few words.
func Outcome(r *domain.Report) string {
	if r.Failure != domain.FailureNone {
		return string(r.Failure)
	}
	if r.Solution == nil {
		return "-"
	}
	switch r.Solution.Kind {
	case domain.SolutionIdentity:
		return "all reals"
	case domain.SolutionNone:
		return "no solution"
	case domain.SolutionSingle:
		return "1 root"
	case domain.SolutionTwo:
		return "2 roots"
	}
	return "-"
}

// SetReports replaces the list contents and resets the selection.
func (l *HistoryList) SetReports(reports []domain.Report) {
	l.reports = reports
	l.selected = 0
	l.offset = 0
}

// Reports returns the current reports.
func (l *HistoryList) Reports() []domain.Report {
	return l.reports
}

// Selected returns the selected report, or nil if the list is empty.
func (l *HistoryList) Selected() *domain.Report {
	if l.selected < 0 || l.selected >= len(l.reports) {
		return nil
	}
	return &l.reports[l.selected]
}

// SelectedIndex returns the selected position.
func (l *HistoryList) SelectedIndex() int {
	return l.selected
}

// MoveUp moves the selection up one row.
func (l *HistoryList) MoveUp() {
	if l.selected > 0 {
		l.selected--
		if l.selected < l.offset {
			l.offset = l.selected
		}
	}
}

// MoveDown moves the selection down one row.
func (l *HistoryList) MoveDown() {
	if l.selected < len(l.reports)-1 {
		l.selected++
		if l.selected >= l.offset+l.height {
			l.offset = l.selected - l.height + 1
		}
	}
}

// SetSize sets the visible rows and width.
func (l *HistoryList) SetSize(width, height int) {
	l.width = width
	if height < 1 {
		height = 1
	}
	l.height = height
}
