package driving

import (
	"context"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// HistoryService exposes previously recorded solves.
type HistoryService interface {
	// List returns recent reports, newest first. A zero limit uses the
	// configured default; a negative limit returns every report.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// Get retrieves a single report by ID.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// Delete removes a single report by ID.
	Delete(ctx context.Context, id string) error

	// Clear removes every report and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
