package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Term is a single coefficient and exponent pair of the indeterminate.
// Terms are values; the reducer produces new Terms rather than mutating.
type Term struct {
	// Coefficient is the signed multiplier of the term.
	Coefficient float64

	// Exponent is the power of the indeterminate. Always >= 0.
	Exponent int
}

// IsZero reports whether the term contributes nothing to the polynomial.
func (t Term) IsZero() bool {
	return t.Coefficient == 0
}

// Negate returns the term with its coefficient sign flipped.
func (t Term) Negate() Term {
	return Term{Coefficient: -t.Coefficient, Exponent: t.Exponent}
}

// Render formats the term as <coefficient><symbol>^<exponent>.
// The exponent is omitted when it is 1; symbol and exponent are both
// omitted for the constant term.
func (t Term) Render(symbol string) string {
	coef := FormatNumber(t.Coefficient, -1)
	switch t.Exponent {
	case 0:
		return coef
	case 1:
		return coef + symbol
	default:
		return coef + symbol + "^" + strconv.Itoa(t.Exponent)
	}
}

// String returns the (coefficient, exponent) pair.
func (t Term) String() string {
	return fmt.Sprintf("(%s, %d)", FormatNumber(t.Coefficient, -1), t.Exponent)
}

// IsIntegral reports whether v equals its own truncation.
func IsIntegral(v float64) bool {
	return !math.IsInf(v, 0) && math.Trunc(v) == v
}

// exponentThreshold is the magnitude from which integral values are
// written in exponent notation instead of as a full digit string.
const exponentThreshold = 1e21

// FormatNumber renders v as an integer when it is integral and as its
// fractional value otherwise. A negative precision keeps the shortest
// representation that round-trips; otherwise at most precision decimals
// are kept and trailing zeros are trimmed. Magnitudes of 1e21 and above
// use the shortest exponent form, e.g. 1e+200.
func FormatNumber(v float64, precision int) string {
	if v == 0 {
		// Collapse negative zero.
		v = 0
	}
	if IsIntegral(v) {
		if math.Abs(v) >= exponentThreshold {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
