package polynomial

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// MaxDegree is the highest polynomial degree Solve handles.
const MaxDegree = 2

// Options configures parsing.
type Options struct {
	// Strict rejects characters the tolerant scanner would skip.
	Strict bool
}

// Equation is a parsed and reduced polynomial equation of the form
// lhs - rhs = 0. It is immutable once Parse returns.
type Equation struct {
	input        string
	symbol       string
	left         []domain.Term
	right        []domain.Term
	highestOrder int
	reduced      []domain.Term
	coefficients []float64
}

// Parse splits input on its single '=', parses both sides, checks that at
// most one indeterminate is used and reduces the result to canonical form.
func Parse(input string, opts Options) (*Equation, error) {
	logger.Section("Parse Equation")
	logger.Debug("Input: %q, strict=%t", input, opts.Strict)

	sides := strings.Split(input, "=")
	if len(sides) != 2 {
		return nil, fmt.Errorf("%w: expected exactly one '=', found %d", domain.ErrInvalidPolynomial, len(sides)-1)
	}

	symbols := Indeterminates(input)
	if len(symbols) > 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMultipleIndeterminates, strings.Join(symbols, ", "))
	}

	lhs, err := parseSide("left", sides[0], opts)
	if err != nil {
		return nil, err
	}
	rhs, err := parseSide("right", sides[1], opts)
	if err != nil {
		return nil, err
	}

	eq := &Equation{
		input:        input,
		left:         lhs.Terms(),
		right:        rhs.Terms(),
		highestOrder: HighestOrder(lhs.terms, rhs.terms),
	}
	if len(symbols) == 1 {
		eq.symbol = symbols[0]
	}

	rhs.FlipPolarity()
	combined := append(lhs.Terms(), rhs.terms...)
	eq.reduced = Reduce(combined)
	for _, t := range eq.reduced {
		if !isFinite(t.Coefficient) {
			return nil, fmt.Errorf("%w: coefficient of exponent %d out of range", domain.ErrInvalidPolynomial, t.Exponent)
		}
	}
	if eq.highestOrder <= MaxDegree {
		dense := Dense(eq.reduced, eq.highestOrder)
		eq.coefficients = make([]float64, len(dense))
		for i, t := range dense {
			eq.coefficients[i] = t.Coefficient
		}
	}

	logger.Debug("Highest order: %d", eq.highestOrder)
	logger.Debug("Reduced terms: %v", eq.reduced)

	return eq, nil
}

func parseSide(name, side string, opts Options) (*Expression, error) {
	expr, err := NewExpression(side, opts.Strict)
	if err != nil {
		return nil, fmt.Errorf("%s side: %w", name, err)
	}
	if expr.Source() == "" {
		return nil, fmt.Errorf("%w: %s side is empty", domain.ErrInvalidPolynomial, name)
	}
	if expr.Len() == 0 {
		return nil, fmt.Errorf("%w: no terms found in %s side %q", domain.ErrInvalidPolynomial, name, expr.Source())
	}
	return expr, nil
}

// Indeterminates returns the distinct alphabetic symbols of s in first-seen order.
func Indeterminates(s string) []string {
	var symbols []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if unicode.IsLetter(r) && !seen[r] {
			seen[r] = true
			symbols = append(symbols, string(r))
		}
	}
	return symbols
}

// Input returns the equation text Parse was given.
func (e *Equation) Input() string {
	return e.input
}

// Symbol returns the indeterminate, or "" for a constant equation.
func (e *Equation) Symbol() string {
	return e.symbol
}

// HighestOrder returns the largest exponent with a non-zero coefficient on
// either raw side, before like terms were merged.
func (e *Equation) HighestOrder() int {
	return e.highestOrder
}

// Degree returns the degree of the reduced polynomial. It is at most
// HighestOrder and is lower when leading terms cancelled out.
func (e *Equation) Degree() int {
	return Degree(e.reduced)
}

// LeftTerms returns the parsed left side in source order.
func (e *Equation) LeftTerms() []domain.Term {
	return append([]domain.Term(nil), e.left...)
}

// RightTerms returns the parsed right side in source order, before negation.
func (e *Equation) RightTerms() []domain.Term {
	return append([]domain.Term(nil), e.right...)
}

// Terms returns the reduced non-zero terms in ascending exponent order.
func (e *Equation) Terms() []domain.Term {
	return append([]domain.Term(nil), e.reduced...)
}

// Coefficients returns the reduced coefficients indexed by exponent from 0
// to HighestOrder. It is nil when HighestOrder exceeds MaxDegree.
func (e *Equation) Coefficients() []float64 {
	return append([]float64(nil), e.coefficients...)
}

// ReducedForm renders the canonical form from the highest exponent down,
// skipping zero terms, joined by " + " and followed by " = 0".
func (e *Equation) ReducedForm() string {
	parts := make([]string, 0, len(e.reduced))
	for i := len(e.reduced) - 1; i >= 0; i-- {
		parts = append(parts, e.reduced[i].Render(e.symbol))
	}
	return strings.Join(parts, " + ") + " = 0"
}

// PrettyForm renders the reduced polynomial the way it would be written by
// hand: unit coefficients dropped, subtraction instead of added negatives,
// and "0 = 0" for the zero polynomial.
func (e *Equation) PrettyForm() string {
	var b strings.Builder
	for i := len(e.reduced) - 1; i >= 0; i-- {
		t := e.reduced[i]
		coef := t.Coefficient
		switch {
		case b.Len() == 0 && coef < 0:
			b.WriteString("-")
		case b.Len() > 0 && coef < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if coef < 0 {
			coef = -coef
		}

		if coef != 1 || t.Exponent == 0 {
			b.WriteString(domain.FormatNumber(coef, -1))
		}
		if t.Exponent > 0 {
			b.WriteString(e.symbol)
		}
		if t.Exponent > 1 {
			fmt.Fprintf(&b, "^%d", t.Exponent)
		}
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" = 0")
	return b.String()
}

// Solve dispatches the reduced polynomial to the solver for its degree.
// An equation whose highest order exceeds MaxDegree fails with
// domain.ErrPolynomialDegreeTooHigh before anything is computed.
func (e *Equation) Solve() (domain.Solution, error) {
	if e.highestOrder > MaxDegree {
		return domain.Solution{}, fmt.Errorf("%w: degree %d exceeds %d",
			domain.ErrPolynomialDegreeTooHigh, e.highestOrder, MaxDegree)
	}

	degree := e.Degree()
	if degree != e.highestOrder {
		logger.Debug("Leading terms cancelled: dispatching degree %d instead of %d", degree, e.highestOrder)
	}

	c := e.coefficients
	var (
		sol domain.Solution
		err error
	)
	switch degree {
	case 0:
		sol = SolveConstant(c[0])
	case 1:
		sol = SolveLinear(c[0], c[1])
	default:
		sol, err = SolveQuadratic(c[0], c[1], c[2])
	}
	if err != nil {
		return domain.Solution{}, err
	}
	for _, r := range sol.Roots {
		if !isFinite(r) {
			return domain.Solution{}, fmt.Errorf("%w: root out of range", domain.ErrInvalidPolynomial)
		}
	}
	return sol, nil
}
