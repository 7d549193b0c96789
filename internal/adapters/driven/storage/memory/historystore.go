package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
	seq     map[string]int
	next    int
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		reports: make(map[string]domain.Report),
		seq:     make(map[string]int),
	}
}

// Save stores or replaces a report.
func (s *HistoryStore) Save(_ context.Context, report *domain.Report) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.seq[report.ID]; !exists {
		s.seq[report.ID] = s.next
		s.next++
	}
	s.reports[report.ID] = cloneReport(*report)
	return nil
}

// Get retrieves a report by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneReport(report)
	return &out, nil
}

// List returns up to limit reports, newest first.
// Reports with equal timestamps keep reverse insertion order.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		result = append(result, cloneReport(r))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return s.seq[result[i].ID] > s.seq[result[j].ID]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a report.
func (s *HistoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.reports, id)
	delete(s.seq, id)
	return nil
}

// Clear removes every report.
func (s *HistoryStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.reports)
	s.reports = make(map[string]domain.Report)
	s.seq = make(map[string]int)
	return n, nil
}

// cloneReport copies the slices and solution so callers cannot mutate
// stored state.
func cloneReport(r domain.Report) domain.Report {
	r.LeftTerms = append([]domain.Term(nil), r.LeftTerms...)
	r.RightTerms = append([]domain.Term(nil), r.RightTerms...)
	r.Coefficients = append([]float64(nil), r.Coefficients...)
	if r.Solution != nil {
		sol := *r.Solution
		sol.Roots = append([]float64(nil), sol.Roots...)
		r.Solution = &sol
	}
	return r
}
