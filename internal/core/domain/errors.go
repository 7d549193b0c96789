package domain

import "errors"

// Solve errors form a closed set. Every failed solve wraps exactly one.
var (
	// ErrMultipleIndeterminates indicates more than one distinct symbol in the input.
	ErrMultipleIndeterminates = errors.New("multiple indeterminates")

	// ErrPolynomialDegreeTooHigh indicates a reduced degree above 2.
	ErrPolynomialDegreeTooHigh = errors.New("polynomial degree too high")

	// ErrNegativeDiscriminant indicates a quadratic with no real roots.
	ErrNegativeDiscriminant = errors.New("negative discriminant")

	// ErrInvalidPolynomial indicates structurally malformed input.
	ErrInvalidPolynomial = errors.New("invalid polynomial")
)

// Infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHistoryDisabled indicates history recording is turned off.
	ErrHistoryDisabled = errors.New("history disabled")
)

// FailureKind tags which solve error a report ended with.
type FailureKind string

// Available failure kinds.
const (
	FailureNone                   FailureKind = ""
	FailureMultipleIndeterminates FailureKind = "multiple_indeterminates"
	FailureDegreeTooHigh          FailureKind = "degree_too_high"
	FailureNegativeDiscriminant   FailureKind = "negative_discriminant"
	FailureInvalidPolynomial      FailureKind = "invalid_polynomial"
)

// FailureOf classifies err into one of the solve failure kinds.
// Errors outside the taxonomy return FailureNone.
func FailureOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrMultipleIndeterminates):
		return FailureMultipleIndeterminates
	case errors.Is(err, ErrPolynomialDegreeTooHigh):
		return FailureDegreeTooHigh
	case errors.Is(err, ErrNegativeDiscriminant):
		return FailureNegativeDiscriminant
	case errors.Is(err, ErrInvalidPolynomial):
		return FailureInvalidPolynomial
	default:
		return FailureNone
	}
}

// Err returns the sentinel error for the kind, or nil for FailureNone.
func (k FailureKind) Err() error {
	switch k {
	case FailureMultipleIndeterminates:
		return ErrMultipleIndeterminates
	case FailureDegreeTooHigh:
		return ErrPolynomialDegreeTooHigh
	case FailureNegativeDiscriminant:
		return ErrNegativeDiscriminant
	case FailureInvalidPolynomial:
		return ErrInvalidPolynomial
	default:
		return nil
	}
}

// String returns the string representation.
func (k FailureKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the failure.
func (k FailureKind) Description() string {
	switch k {
	case FailureNone:
		return "None"
	case FailureMultipleIndeterminates:
		return "The equation uses more than one indeterminate"
	case FailureDegreeTooHigh:
		return "The polynomial degree is strictly greater than 2, I can't solve"
	case FailureNegativeDiscriminant:
		return "Discriminant is strictly negative, there is no real solution"
	case FailureInvalidPolynomial:
		return "The equation is not a valid polynomial"
	default:
		return unknownDescription
	}
}
