// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// SolveRequested is a command to solve the given equation.
type SolveRequested struct {
	Input string
}

// SolveCompleted carries a solve report back to the model.
// Report is set even when Err is a domain solve error.
type SolveCompleted struct {
	Report *domain.Report
	Err    error
}

// HistoryLoaded carries recent reports from the history service.
type HistoryLoaded struct {
	Reports []domain.Report
	Err     error
}

// SettingsChanged is sent when settings were edited outside the TUI.
type SettingsChanged struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSolve is the equation input and result view.
	ViewSolve ViewType = iota
	// ViewHistory lists previous solves.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSolve:
		return "solve"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened outside a solve.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
