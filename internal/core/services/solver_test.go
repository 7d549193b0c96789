package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

func newTestSolver(config map[string]any) (*SolverService, *memory.HistoryStore) {
	history := memory.NewHistoryStore()
	service := NewSolverService(memory.NewConfigStore(config), history)
	service.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	n := 0
	service.newID = func() string {
		n++
		return "report-" + string(rune('0'+n))
	}
	return service, history
}

func TestSolverService_Solve_TwoRoots(t *testing.T) {
	service, _ := newTestSolver(nil)

	report, err := service.Solve(context.Background(), "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0", domain.SolveOptions{})

	require.NoError(t, err)
	require.NotNil(t, report.Solution)
	assert.Equal(t, "report-1", report.ID)
	assert.Equal(t, "X", report.Symbol)
	assert.Equal(t, 2, report.HighestOrder)
	assert.Equal(t, "-9.3X^2 + 4X + 4 = 0", report.ReducedForm)
	assert.True(t, report.Reduced)
	assert.Equal(t, domain.SolutionTwo, report.Solution.Kind)
	assert.InDelta(t, -0.475131, report.Solution.Roots[0], 1e-6)
	assert.InDelta(t, 0.905239, report.Solution.Roots[1], 1e-6)
	assert.False(t, report.Failed())
	assert.Len(t, report.LeftTerms, 3)
	assert.Len(t, report.RightTerms, 1)
}

func TestSolverService_Solve_RecordsHistory(t *testing.T) {
	service, history := newTestSolver(nil)
	ctx := context.Background()

	_, err := service.Solve(ctx, "x = 2", domain.SolveOptions{})
	require.NoError(t, err)

	reports, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "x = 2", reports[0].Input)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), reports[0].CreatedAt)
}

func TestSolverService_Solve_RecordsFailures(t *testing.T) {
	service, history := newTestSolver(nil)
	ctx := context.Background()

	report, err := service.Solve(ctx, "x^2 + 1 = 0", domain.SolveOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNegativeDiscriminant)
	assert.Equal(t, domain.FailureNegativeDiscriminant, report.Failure)
	assert.True(t, report.Reduced)
	assert.Equal(t, "1x^2 + 1 = 0", report.ReducedForm)
	assert.Nil(t, report.Solution)

	stored, err := history.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FailureNegativeDiscriminant, stored.Failure)
}

func TestSolverService_Solve_SkipHistory(t *testing.T) {
	service, history := newTestSolver(nil)
	ctx := context.Background()

	_, err := service.Solve(ctx, "x = 2", domain.SolveOptions{SkipHistory: true})
	require.NoError(t, err)

	reports, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestSolverService_Solve_HistoryDisabled(t *testing.T) {
	service, history := newTestSolver(map[string]any{"history.enabled": false})
	ctx := context.Background()

	_, err := service.Solve(ctx, "x = 2", domain.SolveOptions{})
	require.NoError(t, err)

	reports, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestSolverService_Solve_NilHistoryStore(t *testing.T) {
	service := NewSolverService(memory.NewConfigStore(), nil)

	report, err := service.Solve(context.Background(), "x = 2", domain.SolveOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
}

func TestSolverService_Solve_Failures(t *testing.T) {
	tests := []struct {
		input   string
		want    error
		kind    domain.FailureKind
		reduced bool
	}{
		{"x^3 = 1", domain.ErrPolynomialDegreeTooHigh, domain.FailureDegreeTooHigh, true},
		{"x + y = 1", domain.ErrMultipleIndeterminates, domain.FailureMultipleIndeterminates, false},
		{"x = 1 = 2", domain.ErrInvalidPolynomial, domain.FailureInvalidPolynomial, false},
		{"= 4", domain.ErrInvalidPolynomial, domain.FailureInvalidPolynomial, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			service, _ := newTestSolver(nil)

			report, err := service.Solve(context.Background(), tt.input, domain.SolveOptions{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			require.NotNil(t, report)
			assert.Equal(t, tt.kind, report.Failure)
			assert.Equal(t, tt.reduced, report.Reduced)
			assert.Equal(t, err.Error(), "solve "+`"`+tt.input+`"`+": "+report.Error)
		})
	}
}

func TestSolverService_Solve_StrictFromSettings(t *testing.T) {
	lenient, _ := newTestSolver(nil)
	strict, _ := newTestSolver(map[string]any{"parser.strict": true})
	ctx := context.Background()

	_, err := lenient.Solve(ctx, "2 # x = 4", domain.SolveOptions{})
	require.NoError(t, err)

	_, err = strict.Solve(ctx, "2 # x = 4", domain.SolveOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidPolynomial)

	_, err = lenient.Solve(ctx, "2 # x = 4", domain.SolveOptions{Strict: true})
	assert.ErrorIs(t, err, domain.ErrInvalidPolynomial)
}

func TestSolverService_Solve_CancelledContext(t *testing.T) {
	service, history := newTestSolver(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := service.Solve(ctx, "x = 2", domain.SolveOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, report)

	reports, err := history.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
