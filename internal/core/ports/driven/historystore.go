package driven

import (
	"context"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// HistoryStore persists solve reports.
type HistoryStore interface {
	// Save stores a report. Saving an existing ID replaces it.
	Save(ctx context.Context, report *domain.Report) error

	// Get retrieves a report by ID.
	// Returns domain.ErrNotFound if the report does not exist.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// List returns up to limit reports, newest first.
	// A limit <= 0 returns every report.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// Delete removes a report by ID.
	// Returns domain.ErrNotFound if the report does not exist.
	Delete(ctx context.Context, id string) error

	// Clear removes every report and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
