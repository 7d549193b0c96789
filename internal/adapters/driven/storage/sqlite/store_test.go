package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "history.db"), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".computor", "data", "history.db"), store.Path())
}

func TestNewStore_InvalidDir(t *testing.T) {
	store, err := NewStore("/dev/null/cannot/create")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_MigrationsAreRecordedOnce(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count, version int
	require.NoError(t, second.db.QueryRow(
		"SELECT COUNT(*), MAX(version) FROM schema_migrations").Scan(&count, &version))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, version)

	require.NoError(t, second.migrate(migrations.FS))
}

func sampleReport(id string, at time.Time) *domain.Report {
	return &domain.Report{
		ID:           id,
		Input:        "5 * X^0 + 4 * X^1 = 4 * X^0",
		Symbol:       "X",
		LeftTerms:    []domain.Term{{Coefficient: 5, Exponent: 0}, {Coefficient: 4, Exponent: 1}},
		RightTerms:   []domain.Term{{Coefficient: 4, Exponent: 0}},
		Coefficients: []float64{1, 4},
		HighestOrder: 1,
		ReducedForm:  "4X + 1 = 0",
		PrettyForm:   "4X + 1 = 0",
		Reduced:      true,
		Solution: &domain.Solution{
			Kind:   domain.SolutionSingle,
			Degree: 1,
			Roots:  []float64{-0.25},
		},
		CreatedAt: at,
	}
}

func TestHistoryStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()
	at := time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)

	require.NoError(t, history.Save(ctx, sampleReport("r1", at)))

	got, err := history.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, sampleReport("r1", at), got)
}

func TestHistoryStore_SaveFailedReport(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	failed := &domain.Report{
		ID:        "f1",
		Input:     "x + y = 1",
		Failure:   domain.FailureMultipleIndeterminates,
		Error:     "multiple indeterminates: x, y",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, history.Save(ctx, failed))

	got, err := history.Get(ctx, "f1")
	require.NoError(t, err)
	assert.Nil(t, got.Solution)
	assert.False(t, got.Reduced)
	assert.Equal(t, domain.FailureMultipleIndeterminates, got.Failure)
	assert.Equal(t, failed.Error, got.Error)
	assert.Empty(t, got.LeftTerms)
	assert.True(t, failed.CreatedAt.Equal(got.CreatedAt))
}

func TestHistoryStore_SaveReplacesExisting(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()
	report := sampleReport("r1", time.Now().UTC())

	require.NoError(t, history.Save(ctx, report))
	report.Input = "x = 0"
	require.NoError(t, history.Save(ctx, report))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "x = 0", all[0].Input)
}

func TestHistoryStore_SaveRequiresID(t *testing.T) {
	history := setupTestStore(t).HistoryStore()

	assert.ErrorIs(t, history.Save(context.Background(), &domain.Report{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, history.Save(context.Background(), nil), domain.ErrInvalidInput)
}

func TestHistoryStore_GetNotFound(t *testing.T) {
	history := setupTestStore(t).HistoryStore()

	_, err := history.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryStore_ListNewestFirst(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, history.Save(ctx, sampleReport("old", base)))
	require.NoError(t, history.Save(ctx, sampleReport("new", base.Add(time.Hour))))
	require.NoError(t, history.Save(ctx, sampleReport("tie", base.Add(time.Hour))))

	all, err := history.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "tie", all[0].ID)
	assert.Equal(t, "new", all[1].ID)
	assert.Equal(t, "old", all[2].ID)

	limited, err := history.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "tie", limited[0].ID)
}

func TestHistoryStore_ListEmpty(t *testing.T) {
	history := setupTestStore(t).HistoryStore()

	all, err := history.List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHistoryStore_DeleteAndClear(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, history.Save(ctx, sampleReport("a", now)))
	require.NoError(t, history.Save(ctx, sampleReport("b", now)))
	require.NoError(t, history.Save(ctx, sampleReport("c", now)))

	require.NoError(t, history.Delete(ctx, "a"))
	assert.ErrorIs(t, history.Delete(ctx, "a"), domain.ErrNotFound)

	n, err := history.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = history.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestHistoryStore_CancelledContext(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := history.Save(ctx, sampleReport("r1", time.Now()))

	assert.Error(t, err)
}
