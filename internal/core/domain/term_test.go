package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm_Render(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{Term{Coefficient: 5, Exponent: 2}, "5x^2"},
		{Term{Coefficient: -4, Exponent: 0}, "-4"},
		{Term{Coefficient: 1, Exponent: 1}, "1x"},
		{Term{Coefficient: 2.5, Exponent: 1}, "2.5x"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.Render("x"))
		})
	}
}

func TestTerm_NegateAndIsZero(t *testing.T) {
	term := Term{Coefficient: 3, Exponent: 1}

	assert.Equal(t, Term{Coefficient: -3, Exponent: 1}, term.Negate())
	assert.Equal(t, term, term.Negate().Negate())
	assert.False(t, term.IsZero())
	assert.True(t, Term{Exponent: 4}.IsZero())
}

func TestTerm_String(t *testing.T) {
	assert.Equal(t, "(5, 2)", Term{Coefficient: 5, Exponent: 2}.String())
	assert.Equal(t, "(-0.5, 0)", Term{Coefficient: -0.5}.String())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"integer", 5, -1, "5"},
		{"negative integer", -2, -1, "-2"},
		{"negative zero", math.Copysign(0, -1), -1, "0"},
		{"fraction", 2.5, -1, "2.5"},
		{"repeating", 1.0 / 3, 3, "0.333"},
		{"trailing zeros trimmed", 2.5, 4, "2.5"},
		{"rounds to zero", -0.00001, 2, "0"},
		{"integer ignores precision", 7, 3, "7"},
		{"zero precision", 2.6, 0, "3"},
		{"large integer below threshold", 1e20, -1, "100000000000000000000"},
		{"large integer", 1e200, -1, "1e+200"},
		{"large negative integer", -3e21, 2, "-3e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value, tt.precision))
		})
	}
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral(2))
	assert.True(t, IsIntegral(-3))
	assert.False(t, IsIntegral(2.5))
	assert.False(t, IsIntegral(math.Inf(1)))
	assert.False(t, IsIntegral(math.NaN()))
}
