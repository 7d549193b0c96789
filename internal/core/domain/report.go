package domain

import "time"

// Report records a single solve invocation.
// A report is produced for failed solves too; fields that were computed
// before the failure are kept so the reduced form can still be shown.
type Report struct {
	// ID is the unique identifier for the report.
	ID string

	// Input is the raw equation text as submitted.
	Input string

	// Symbol is the indeterminate, empty when the equation has none.
	Symbol string

	// LeftTerms are the parsed terms of the left side in source order.
	LeftTerms []Term

	// RightTerms are the parsed terms of the right side in source order.
	RightTerms []Term

	// Coefficients are the reduced coefficients indexed by exponent. Empty
	// when the highest order exceeds the solvable degree.
	Coefficients []float64

	// HighestOrder is the largest exponent with a non-zero coefficient
	// across both raw sides.
	HighestOrder int

	// ReducedForm is the canonical "... = 0" rendering.
	ReducedForm string

	// PrettyForm is the sign-aware rendering of the same polynomial.
	PrettyForm string

	// Reduced reports whether parsing and reduction succeeded.
	Reduced bool

	// Solution is set when the solve succeeded.
	Solution *Solution

	// Failure classifies the error when the solve failed.
	Failure FailureKind

	// Error is the failure message.
	Error string

	// CreatedAt is when the solve ran.
	CreatedAt time.Time
}

// Failed reports whether the solve ended in one of the failure kinds.
func (r *Report) Failed() bool {
	return r.Failure != FailureNone
}

// SolveOptions configures a single solve.
type SolveOptions struct {
	// Strict rejects input the tolerant parser would otherwise skip.
	Strict bool

	// SkipHistory prevents the report from being recorded.
	SkipHistory bool
}
