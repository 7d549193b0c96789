package driving

import (
	"context"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// SolverService solves polynomial equations for external actors.
type SolverService interface {
	// Solve parses, reduces and solves one equation.
	//
	// The returned report is never nil. When the error is one of the domain
	// solve errors the report still carries everything computed before the
	// failure, including the reduced form when reduction succeeded.
	Solve(ctx context.Context, input string, opts domain.SolveOptions) (*domain.Report, error)
}
