package polynomial

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// Expression is one side of an equation: its whitespace-free source and
// the terms parsed from it.
type Expression struct {
	source string
	terms  []domain.Term
}

// NewExpression parses one side of an equation.
func NewExpression(side string, strict bool) (*Expression, error) {
	source := stripSpace(side)

	terms, err := ParseTerms(source, strict)
	if err != nil {
		return nil, err
	}

	logger.Debug("Parsed %q into %d terms: %v", source, len(terms), terms)

	return &Expression{
		source: source,
		terms:  terms,
	}, nil
}

// Source returns the normalised text the expression was parsed from.
func (e *Expression) Source() string {
	return e.source
}

// Terms returns a copy of the expression's terms in source order.
func (e *Expression) Terms() []domain.Term {
	out := make([]domain.Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// Len returns the number of terms.
func (e *Expression) Len() int {
	return len(e.terms)
}

// FlipPolarity negates every coefficient in place, moving the expression
// across the equality sign.
func (e *Expression) FlipPolarity() {
	for i := range e.terms {
		e.terms[i] = e.terms[i].Negate()
	}
}

// stripSpace removes every whitespace character.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
