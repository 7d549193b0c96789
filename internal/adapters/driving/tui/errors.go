package tui

import "errors"

// ErrMissingSolverService is returned when the solver service is not provided.
var ErrMissingSolverService = errors.New("tui: solver service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
