package mcp

import (
	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Solver solves equations. Required.
	Solver driving.SolverService

	// History exposes recorded solves. Optional.
	History driving.HistoryService

	// Settings supplies display settings. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Solver == nil {
		return ErrMissingSolverService
	}
	return nil
}

// display returns the configured display settings or the defaults.
func (p *Ports) display() domain.DisplaySettings {
	if p.Settings != nil {
		if settings, err := p.Settings.Get(); err == nil {
			return settings.Display
		}
	}
	return domain.DefaultAppSettings().Display
}
