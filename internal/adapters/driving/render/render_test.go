package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

func quadraticReport() *domain.Report {
	return &domain.Report{
		ID:           "r1",
		Input:        "x^2 = 2",
		Symbol:       "x",
		LeftTerms:    []domain.Term{{Coefficient: 1, Exponent: 2}},
		RightTerms:   []domain.Term{{Coefficient: 2, Exponent: 0}},
		Coefficients: []float64{-2, 0, 1},
		HighestOrder: 2,
		ReducedForm:  "1x^2 + -2 = 0",
		PrettyForm:   "x^2 - 2 = 0",
		Reduced:      true,
		Solution: &domain.Solution{
			Kind:         domain.SolutionTwo,
			Degree:       2,
			Roots:        []float64{1.4142135623730951, -1.4142135623730951},
			Discriminant: 8,
		},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarize_Quadratic(t *testing.T) {
	s := Summarize(quadraticReport(), domain.DisplaySettings{Precision: 3})

	assert.Equal(t, "1x^2 + -2 = 0", s.Equation)
	assert.Equal(t, 2, s.Degree)
	assert.Equal(t, "8", s.Discriminant)
	assert.Equal(t, []string{"1.414", "-1.414"}, s.Roots)
	assert.Empty(t, s.Failure)
	assert.Equal(t, []string{
		"Reduced form: 1x^2 + -2 = 0",
		"Polynomial degree: 2",
		"Discriminant: 8",
		"Discriminant is strictly positive, the two solutions are:",
		"1.414",
		"-1.414",
	}, s.Lines())
}

func TestSummarize_Pretty(t *testing.T) {
	s := Summarize(quadraticReport(), domain.DisplaySettings{Precision: -1, Pretty: true})

	assert.Equal(t, "x^2 - 2 = 0", s.Equation)
	assert.Equal(t, "1.4142135623730951", s.Roots[0])
}

func TestSummarize_Failure(t *testing.T) {
	report := &domain.Report{
		Input:        "x^3 = 1",
		HighestOrder: 3,
		ReducedForm:  "1x^3 + -1 = 0",
		Reduced:      true,
		Failure:      domain.FailureDegreeTooHigh,
	}

	s := Summarize(report, domain.DisplaySettings{Precision: -1})

	assert.Equal(t, domain.FailureDegreeTooHigh.Description(), s.Failure)
	assert.Equal(t, []string{"Reduced form: 1x^3 + -1 = 0", "Polynomial degree: 3"}, s.Lines())
}

func TestSummarize_DemotedDegree(t *testing.T) {
	report := &domain.Report{
		Input:        "x^2 = x^2 + x",
		HighestOrder: 2,
		ReducedForm:  "-1x = 0",
		Reduced:      true,
		Solution:     &domain.Solution{Kind: domain.SolutionSingle, Degree: 1, Roots: []float64{0}},
	}

	s := Summarize(report, domain.DisplaySettings{Precision: -1})

	assert.Equal(t, 1, s.Degree)
	assert.Empty(t, s.Discriminant)
	assert.Equal(t, []string{
		"Reduced form: -1x = 0",
		"Polynomial degree: 1",
		"The solution is:",
		"0",
	}, s.Lines())
}

func TestSummarize_UnreducedFailure(t *testing.T) {
	report := &domain.Report{Input: "x + y = 1", Failure: domain.FailureMultipleIndeterminates}

	s := Summarize(report, domain.DisplaySettings{})

	assert.Empty(t, s.Lines())
	assert.NotEmpty(t, s.Failure)
}

func TestSummarize_Nil(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil, domain.DisplaySettings{}))
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		sol  domain.Solution
		want string
	}{
		{domain.Solution{Kind: domain.SolutionIdentity}, "Every real number is a solution."},
		{domain.Solution{Kind: domain.SolutionNone}, "There is no solution."},
		{domain.Solution{Kind: domain.SolutionSingle, Degree: 1}, "The solution is:"},
		{domain.Solution{Kind: domain.SolutionSingle, Degree: 2}, "Discriminant is zero, the solution is:"},
		{domain.Solution{Kind: domain.SolutionTwo, Degree: 2}, "Discriminant is strictly positive, the two solutions are:"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Headline(tt.sol))
	}
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []string{
		"Left side terms:",
		"  (1, 2)",
		"Right side terms:",
		"  (2, 0)",
	}, Steps(quadraticReport()))

	assert.Nil(t, Steps(&domain.Report{}))
}

func TestView_JSONShape(t *testing.T) {
	data, err := json.Marshal(View(quadraticReport()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "r1", decoded["id"])
	assert.Equal(t, "1x^2 + -2 = 0", decoded["reduced_form"])
	assert.NotContains(t, decoded, "failure")

	solution, ok := decoded["solution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "two_roots", solution["kind"])
	assert.Equal(t, 8.0, solution["discriminant"])
}

func TestView_LinearOmitsDiscriminant(t *testing.T) {
	report := &domain.Report{
		ID:       "r2",
		Reduced:  true,
		Solution: &domain.Solution{Kind: domain.SolutionIdentity},
	}

	v := View(report)

	require.NotNil(t, v.Solution)
	assert.Nil(t, v.Solution.Discriminant)
	assert.NotNil(t, v.Solution.Roots)
	assert.Len(t, Views([]domain.Report{*report, *report}), 2)
}
