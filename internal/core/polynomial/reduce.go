package polynomial

import (
	"sort"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// HighestOrder returns the largest exponent carried by a term with a non-zero
// coefficient. A zero-coefficient term never raises the order.
func HighestOrder(sides ...[]domain.Term) int {
	order := 0
	for _, terms := range sides {
		for _, t := range terms {
			if !t.IsZero() && t.Exponent > order {
				order = t.Exponent
			}
		}
	}
	return order
}

// Reduce sums like terms and returns one term per distinct exponent whose
// sum is non-zero, in ascending exponent order. Memory is bounded by the
// number of terms, not by the exponents they carry. The input is not
// modified, and reducing an already reduced slice returns an equal slice.
func Reduce(terms []domain.Term) []domain.Term {
	sums := make(map[int]float64, len(terms))
	for _, t := range terms {
		sums[t.Exponent] += t.Coefficient
	}

	reduced := make([]domain.Term, 0, len(sums))
	for exp, coef := range sums {
		if coef == 0 {
			continue
		}
		reduced = append(reduced, domain.Term{Coefficient: coef, Exponent: exp})
	}
	sort.Slice(reduced, func(i, j int) bool {
		return reduced[i].Exponent < reduced[j].Exponent
	})
	return reduced
}

// Dense expands reduced terms into one term per exponent from 0 to order,
// indexed by exponent. Terms above order are dropped. Callers bound order
// before expanding.
func Dense(reduced []domain.Term, order int) []domain.Term {
	dense := make([]domain.Term, order+1)
	for i := range dense {
		dense[i] = domain.Term{Coefficient: 0, Exponent: i}
	}
	for _, t := range reduced {
		if t.Exponent > order {
			continue
		}
		dense[t.Exponent].Coefficient += t.Coefficient
	}
	return dense
}

// Degree returns the highest exponent among reduced terms with a non-zero
// coefficient, or 0 when every coefficient is zero.
func Degree(reduced []domain.Term) int {
	degree := 0
	for _, t := range reduced {
		if !t.IsZero() && t.Exponent > degree {
			degree = t.Exponent
		}
	}
	return degree
}
