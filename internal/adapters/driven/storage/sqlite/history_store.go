package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

const historyColumns = `id, input, symbol, left_terms, right_terms, coefficients,
	highest_order, reduced_form, pretty_form, reduced, solution, failure, error, created_at`

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// termRow is the stored shape of a domain.Term.
type termRow struct {
	Coefficient float64 `json:"c"`
	Exponent    int     `json:"e"`
}

// solutionRow is the stored shape of a domain.Solution.
type solutionRow struct {
	Kind         domain.SolutionKind `json:"kind"`
	Degree       int                 `json:"degree"`
	Roots        []float64           `json:"roots"`
	Discriminant float64             `json:"discriminant"`
}

// Save stores or replaces a report.
func (s *historyStore) Save(ctx context.Context, report *domain.Report) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: report requires an id", domain.ErrInvalidInput)
	}

	left, err := marshalTerms(report.LeftTerms)
	if err != nil {
		return fmt.Errorf("marshalling left terms: %w", err)
	}
	right, err := marshalTerms(report.RightTerms)
	if err != nil {
		return fmt.Errorf("marshalling right terms: %w", err)
	}
	coefficients, err := marshalFloats(report.Coefficients)
	if err != nil {
		return fmt.Errorf("marshalling coefficients: %w", err)
	}
	solution, err := marshalSolution(report.Solution)
	if err != nil {
		return fmt.Errorf("marshalling solution: %w", err)
	}

	createdAt := report.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO history (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			input = excluded.input,
			symbol = excluded.symbol,
			left_terms = excluded.left_terms,
			right_terms = excluded.right_terms,
			coefficients = excluded.coefficients,
			highest_order = excluded.highest_order,
			reduced_form = excluded.reduced_form,
			pretty_form = excluded.pretty_form,
			reduced = excluded.reduced,
			solution = excluded.solution,
			failure = excluded.failure,
			error = excluded.error,
			created_at = excluded.created_at
	`, report.ID, report.Input, report.Symbol, left, right, coefficients,
		report.HighestOrder, report.ReducedForm, report.PrettyForm, report.Reduced, solution,
		string(report.Failure), report.Error, createdAt.UnixNano())

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+historyColumns+" FROM history WHERE id = ?", id)

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

// List returns up to limit reports, newest first. A limit <= 0 returns all.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Report, error) {
	query := "SELECT " + historyColumns + " FROM history ORDER BY created_at DESC, seq DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return reports, nil
}

// Delete removes a report.
func (s *historyStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear removes every report and returns how many were removed.
func (s *historyStore) Clear(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var report domain.Report
	var left, right, coefficients, failure string
	var solution sql.NullString
	var createdAt int64

	if err := row.Scan(&report.ID, &report.Input, &report.Symbol, &left, &right,
		&coefficients, &report.HighestOrder, &report.ReducedForm, &report.PrettyForm, &report.Reduced,
		&solution, &failure, &report.Error, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	var err error
	if report.LeftTerms, err = unmarshalTerms(left); err != nil {
		return nil, fmt.Errorf("unmarshaling left terms: %w", err)
	}
	if report.RightTerms, err = unmarshalTerms(right); err != nil {
		return nil, fmt.Errorf("unmarshaling right terms: %w", err)
	}
	if err := json.Unmarshal([]byte(coefficients), &report.Coefficients); err != nil {
		return nil, fmt.Errorf("unmarshaling coefficients: %w", err)
	}
	if solution.Valid && solution.String != jsonNull {
		var sr solutionRow
		if err := json.Unmarshal([]byte(solution.String), &sr); err != nil {
			return nil, fmt.Errorf("unmarshaling solution: %w", err)
		}
		report.Solution = &domain.Solution{
			Kind:         sr.Kind,
			Degree:       sr.Degree,
			Roots:        sr.Roots,
			Discriminant: sr.Discriminant,
		}
	}

	report.Failure = domain.FailureKind(failure)
	report.CreatedAt = time.Unix(0, createdAt).UTC()
	return &report, nil
}

func marshalTerms(terms []domain.Term) (string, error) {
	rows := make([]termRow, len(terms))
	for i, t := range terms {
		rows[i] = termRow{Coefficient: t.Coefficient, Exponent: t.Exponent}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalTerms(data string) ([]domain.Term, error) {
	var rows []termRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	terms := make([]domain.Term, len(rows))
	for i, r := range rows {
		terms[i] = domain.Term{Coefficient: r.Coefficient, Exponent: r.Exponent}
	}
	return terms, nil
}

func marshalFloats(values []float64) (string, error) {
	if values == nil {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalSolution(solution *domain.Solution) (sql.NullString, error) {
	if solution == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(solutionRow{
		Kind:         solution.Kind,
		Degree:       solution.Degree,
		Roots:        solution.Roots,
		Discriminant: solution.Discriminant,
	})
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
