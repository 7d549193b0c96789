package mcp

import (
	"context"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// mockSolverService is a mock implementation of driving.SolverService.
type mockSolverService struct {
	report *domain.Report
	err    error
}

func (m *mockSolverService) Solve(
	_ context.Context,
	input string,
	_ domain.SolveOptions,
) (*domain.Report, error) {
	if m.report != nil {
		return m.report, m.err
	}
	return &domain.Report{Input: input}, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	reports   []domain.Report
	report    *domain.Report
	err       error
	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Report, error) {
	m.lastLimit = limit
	return m.reports, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockHistoryService) Clear(_ context.Context) (int, error) {
	return len(m.reports), m.err
}
