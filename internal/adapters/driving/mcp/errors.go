// Package mcp provides an MCP (Model Context Protocol) server adapter for computor.
// It lets AI assistants solve equations and read the solve history.
package mcp

import "errors"

// ErrMissingSolverService is returned when the solver service is not provided.
var ErrMissingSolverService = errors.New("mcp: solver service is required")
