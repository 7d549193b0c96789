package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/polynomial"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// Ensure SolverService implements the interface.
var _ driving.SolverService = (*SolverService)(nil)

// SolverService runs the parse, reduce and solve pipeline and records
// each outcome in the history store.
type SolverService struct {
	configStore  driven.ConfigStore
	historyStore driven.HistoryStore
	now          func() time.Time
	newID        func() string
}

// NewSolverService creates a new solver service.
// The historyStore parameter is optional (can be nil).
func NewSolverService(configStore driven.ConfigStore, historyStore driven.HistoryStore) *SolverService {
	return &SolverService{
		configStore:  configStore,
		historyStore: historyStore,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// Solve parses, reduces and solves one equation.
func (s *SolverService) Solve(ctx context.Context, input string, opts domain.SolveOptions) (*domain.Report, error) {
	logger.Section("Solve")

	report := &domain.Report{
		ID:        s.newID(),
		Input:     input,
		CreatedAt: s.now(),
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	settings := loadSettings(s.configStore)
	strict := opts.Strict || settings.Parser.Strict
	logger.Debug("Strict parsing: %t", strict)

	err := s.solve(report, strict)
	if err != nil {
		report.Failure = domain.FailureOf(err)
		report.Error = err.Error()
		logger.Info("Solve failed (%s): %v", report.Failure, err)
	} else {
		logger.Info("Solved: %s", report.Solution.Kind.Description())
	}

	if !opts.SkipHistory && settings.History.Enabled {
		s.record(ctx, report)
	}

	if err != nil {
		return report, fmt.Errorf("solve %q: %w", input, err)
	}
	return report, nil
}

// solve fills report in pipeline order so a failure keeps every field
// computed before it.
func (s *SolverService) solve(report *domain.Report, strict bool) error {
	eq, err := polynomial.Parse(report.Input, polynomial.Options{Strict: strict})
	if err != nil {
		return err
	}

	report.Symbol = eq.Symbol()
	report.LeftTerms = eq.LeftTerms()
	report.RightTerms = eq.RightTerms()
	report.Coefficients = eq.Coefficients()
	report.HighestOrder = eq.HighestOrder()
	report.ReducedForm = eq.ReducedForm()
	report.PrettyForm = eq.PrettyForm()
	report.Reduced = true
	logger.Debug("Reduced form: %s", report.ReducedForm)

	solution, err := eq.Solve()
	if err != nil {
		return err
	}
	report.Solution = &solution
	return nil
}

// record saves the report. History is auxiliary: failures are logged, not returned.
func (s *SolverService) record(ctx context.Context, report *domain.Report) {
	if s.historyStore == nil {
		logger.Debug("History store not configured, skipping record")
		return
	}
	if err := s.historyStore.Save(ctx, report); err != nil {
		logger.Warn("Failed to record solve %s: %v", report.ID, err)
		return
	}
	logger.Debug("Recorded solve %s", report.ID)
}
