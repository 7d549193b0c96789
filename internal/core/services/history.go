package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides access to recorded solves.
type HistoryService struct {
	configStore  driven.ConfigStore
	historyStore driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(configStore driven.ConfigStore, historyStore driven.HistoryStore) *HistoryService {
	return &HistoryService{
		configStore:  configStore,
		historyStore: historyStore,
	}
}

// List returns recent reports, newest first.
// A zero limit uses the configured history.limit; a negative limit returns all.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if s.historyStore == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit == 0 {
		limit = loadSettings(s.configStore).History.Limit
	}
	logger.Debug("Listing history: limit=%d", limit)

	reports, err := s.historyStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return reports, nil
}

// Get retrieves a single report by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Report, error) {
	if s.historyStore == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty report id", domain.ErrInvalidInput)
	}

	report, err := s.historyStore.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return report, nil
}

// Delete removes a single report by ID.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.historyStore == nil {
		return domain.ErrHistoryDisabled
	}
	if err := s.historyStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}

// Clear removes every report.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.historyStore == nil {
		return 0, domain.ErrHistoryDisabled
	}
	n, err := s.historyStore.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	logger.Info("Cleared %d history entries", n)
	return n, nil
}
