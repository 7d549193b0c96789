package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

func TestParseTerms_SingleTerms(t *testing.T) {
	tests := []struct {
		side string
		want domain.Term
	}{
		{"5x^2", domain.Term{Coefficient: 5, Exponent: 2}},
		{"-x", domain.Term{Coefficient: -1, Exponent: 1}},
		{"3", domain.Term{Coefficient: 3, Exponent: 0}},
		{"x^0", domain.Term{Coefficient: 1, Exponent: 0}},
		{"5*x^2", domain.Term{Coefficient: 5, Exponent: 2}},
		{"--5", domain.Term{Coefficient: 5, Exponent: 0}},
		{"-2.5x", domain.Term{Coefficient: -2.5, Exponent: 1}},
		{"+x^", domain.Term{Coefficient: 1, Exponent: 1}},
		{"12x^10", domain.Term{Coefficient: 12, Exponent: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.side, func(t *testing.T) {
			terms, err := ParseTerms(tt.side, false)
			require.NoError(t, err)
			require.Len(t, terms, 1)
			assert.Equal(t, tt.want, terms[0])
		})
	}
}

func TestParseTerms_SplitsOnSignsAfterTerms(t *testing.T) {
	terms, err := ParseTerms("5*x^2+4*x^1-6*x^0", false)
	require.NoError(t, err)

	assert.Equal(t, []domain.Term{
		{Coefficient: 5, Exponent: 2},
		{Coefficient: 4, Exponent: 1},
		{Coefficient: -6, Exponent: 0},
	}, terms)
}

func TestParseTerms_LeadingSignBelongsToTerm(t *testing.T) {
	terms, err := ParseTerms("-3x+-2", false)
	require.NoError(t, err)

	assert.Equal(t, []domain.Term{
		{Coefficient: -3, Exponent: 1},
		{Coefficient: -2, Exponent: 0},
	}, terms)
}

func TestParseTerms_TolerantSkipsUnknownCharacters(t *testing.T) {
	terms, err := ParseTerms("5?x+(2)", false)
	require.NoError(t, err)

	assert.Equal(t, []domain.Term{
		{Coefficient: 5, Exponent: 1},
		{Coefficient: 2, Exponent: 0},
	}, terms)
}

func TestParseTerms_DanglingSignIsDropped(t *testing.T) {
	terms, err := ParseTerms("5-", false)
	require.NoError(t, err)
	assert.Equal(t, []domain.Term{{Coefficient: 5, Exponent: 0}}, terms)
}

func TestParseTerms_Empty(t *testing.T) {
	terms, err := ParseTerms("", false)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestParseTerms_StrictRejects(t *testing.T) {
	tests := []string{
		"5?x",
		"x^2^3",
		"^2",
		"xy",
		"x2",
		"x^",
		"1..2x",
	}

	for _, side := range tests {
		t.Run(side, func(t *testing.T) {
			_, err := ParseTerms(side, true)
			assert.ErrorIs(t, err, domain.ErrInvalidPolynomial)
		})
	}
}

func TestParseTerms_StrictAcceptsWellFormed(t *testing.T) {
	terms, err := ParseTerms("5*x^2+4.5*x-3", true)
	require.NoError(t, err)
	assert.Len(t, terms, 3)
}

func TestParseTerms_AlwaysRejected(t *testing.T) {
	for _, side := range []string{"x^2.5", "1.2.3"} {
		t.Run(side, func(t *testing.T) {
			_, err := ParseTerms(side, false)
			assert.ErrorIs(t, err, domain.ErrInvalidPolynomial)
		})
	}
}

func TestScanState_String(t *testing.T) {
	assert.Equal(t, "SeekTermStart", seekTermStart.String())
	assert.Equal(t, "InCoefficient", inCoefficient.String())
	assert.Equal(t, "AfterSymbol", afterSymbol.String())
	assert.Equal(t, "InExponent", inExponent.String())
}
