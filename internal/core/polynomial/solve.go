package polynomial

import (
	"fmt"
	"math"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// SolveConstant solves c = 0. A zero constant is an identity; anything else
// has no solution.
func SolveConstant(c float64) domain.Solution {
	if c == 0 {
		return domain.Solution{Kind: domain.SolutionIdentity, Degree: 0}
	}
	return domain.Solution{Kind: domain.SolutionNone, Degree: 0}
}

// SolveLinear solves a·x + b = 0 for a non-zero a.
func SolveLinear(b, a float64) domain.Solution {
	if a == 0 {
		return SolveConstant(b)
	}
	return domain.Solution{
		Kind:   domain.SolutionSingle,
		Degree: 1,
		Roots:  []float64{-b / a},
	}
}

// SolveQuadratic solves a·x² + b·x + c = 0 for a non-zero a.
// A negative discriminant fails with domain.ErrNegativeDiscriminant.
// Two roots are reported as (-b + √Δ) / 2a then (-b − √Δ) / 2a.
//
// The coefficients are scaled by a power of two before squaring so that
// large inputs do not overflow. Power-of-two scaling is exact, so roots are
// identical to the unscaled computation whenever that one is finite. A
// positive discriminant that does not fit a float64 fails with
// domain.ErrInvalidPolynomial.
func SolveQuadratic(c, b, a float64) (domain.Solution, error) {
	if a == 0 {
		return SolveLinear(c, b), nil
	}
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return domain.Solution{}, fmt.Errorf("%w: coefficient out of range", domain.ErrInvalidPolynomial)
	}

	_, k := math.Frexp(math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c))))
	as, bs, cs := math.Ldexp(a, -k), math.Ldexp(b, -k), math.Ldexp(c, -k)

	scaled := bs*bs - 4*as*cs
	discriminant := math.Ldexp(scaled, 2*k)
	logger.Debug("Discriminant: %s", domain.FormatNumber(discriminant, -1))

	switch {
	case scaled < 0:
		return domain.Solution{}, fmt.Errorf("%w: %s",
			domain.ErrNegativeDiscriminant, domain.FormatNumber(discriminant, -1))
	case !isFinite(discriminant):
		return domain.Solution{}, fmt.Errorf("%w: discriminant out of range", domain.ErrInvalidPolynomial)
	case scaled == 0:
		return domain.Solution{
			Kind:         domain.SolutionSingle,
			Degree:       2,
			Roots:        []float64{-bs / (2 * as)},
			Discriminant: discriminant,
		}, nil
	default:
		sq := math.Sqrt(scaled)
		return domain.Solution{
			Kind:         domain.SolutionTwo,
			Degree:       2,
			Roots:        []float64{(-bs + sq) / (2 * as), (-bs - sq) / (2 * as)},
			Discriminant: discriminant,
		}, nil
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
