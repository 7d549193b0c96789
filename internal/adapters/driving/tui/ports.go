// Package tui provides an interactive equation solver for the terminal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Solver solves equations. Required.
	Solver driving.SolverService

	// History lists previous solves. Optional; the history view is
	// disabled without it.
	History driving.HistoryService

	// Settings supplies display defaults. Optional.
	Settings driving.SettingsService

	// SettingsChanges signals that settings were changed outside the TUI.
	// Optional; display settings are re-read on each signal.
	SettingsChanges <-chan struct{}
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	solver driving.SolverService,
	history driving.HistoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Solver:   solver,
		History:  history,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Solver == nil {
		return ErrMissingSolverService
	}
	return nil
}

// display returns the configured display settings, or the defaults when
// settings are unavailable.
func (p *Ports) display() domain.DisplaySettings {
	if p.Settings != nil {
		if s, err := p.Settings.Get(); err == nil && s != nil {
			return s.Display
		}
	}
	return domain.DefaultAppSettings().Display
}
