// Package render turns solve reports into display-ready text and JSON views
// shared by the CLI, TUI and MCP adapters.
package render

import (
	"fmt"
	"time"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// Summary is a display-ready rendering of a report.
type Summary struct {
	// Equation is the reduced form, pretty or canonical per settings.
	// Empty when the input never reduced.
	Equation string

	// Degree is the degree the solution was computed for. It falls back to
	// the highest order of the raw equation when there is no solution.
	Degree int

	// Discriminant is set for quadratic solves only.
	Discriminant string

	// Headline introduces the roots.
	Headline string

	// Roots are formatted with the configured precision.
	Roots []string

	// Failure describes why the solve failed. Empty on success.
	Failure string
}

// Summarize renders report using the display settings.
func Summarize(report *domain.Report, display domain.DisplaySettings) Summary {
	var s Summary
	if report == nil {
		return s
	}

	if report.Reduced {
		s.Equation = report.ReducedForm
		if display.Pretty && report.PrettyForm != "" {
			s.Equation = report.PrettyForm
		}
		s.Degree = report.HighestOrder
	}

	if report.Failed() {
		s.Failure = report.Failure.Description()
		return s
	}

	sol := report.Solution
	if sol == nil {
		return s
	}
	s.Degree = sol.Degree
	if sol.Degree == 2 {
		s.Discriminant = domain.FormatNumber(sol.Discriminant, display.Precision)
	}
	s.Headline = Headline(*sol)
	for _, r := range sol.Roots {
		s.Roots = append(s.Roots, domain.FormatNumber(r, display.Precision))
	}
	return s
}

// Headline returns the sentence that introduces a solution's roots.
func Headline(sol domain.Solution) string {
	switch sol.Kind {
	case domain.SolutionIdentity:
		return "Every real number is a solution."
	case domain.SolutionNone:
		return "There is no solution."
	case domain.SolutionSingle:
		if sol.Degree == 2 {
			return "Discriminant is zero, the solution is:"
		}
		return "The solution is:"
	case domain.SolutionTwo:
		return "Discriminant is strictly positive, the two solutions are:"
	default:
		return sol.Kind.Description()
	}
}

// Lines renders the summary as plain text lines, one fact per line.
// The failure is not included; callers surface it as an error.
func (s Summary) Lines() []string {
	var lines []string
	if s.Equation != "" {
		lines = append(lines,
			"Reduced form: "+s.Equation,
			fmt.Sprintf("Polynomial degree: %d", s.Degree))
	}
	if s.Discriminant != "" {
		lines = append(lines, "Discriminant: "+s.Discriminant)
	}
	if s.Headline != "" {
		lines = append(lines, s.Headline)
	}
	lines = append(lines, s.Roots...)
	return lines
}

// Steps renders the parsed terms of both sides as they were read.
func Steps(report *domain.Report) []string {
	if report == nil || !report.Reduced {
		return nil
	}
	lines := make([]string, 0, len(report.LeftTerms)+len(report.RightTerms)+2)
	lines = append(lines, "Left side terms:")
	for _, t := range report.LeftTerms {
		lines = append(lines, "  "+t.String())
	}
	lines = append(lines, "Right side terms:")
	for _, t := range report.RightTerms {
		lines = append(lines, "  "+t.String())
	}
	return lines
}

// TermView is the JSON shape of a term.
type TermView struct {
	Coefficient float64 `json:"coefficient"`
	Exponent    int     `json:"exponent"`
}

// SolutionView is the JSON shape of a solution.
type SolutionView struct {
	Kind         string    `json:"kind"`
	Degree       int       `json:"degree"`
	Roots        []float64 `json:"roots"`
	Discriminant *float64  `json:"discriminant,omitempty"`
}

// ReportView is the JSON shape of a report.
type ReportView struct {
	ID           string        `json:"id"`
	Input        string        `json:"input"`
	Symbol       string        `json:"symbol,omitempty"`
	LeftTerms    []TermView    `json:"left_terms,omitempty"`
	RightTerms   []TermView    `json:"right_terms,omitempty"`
	Coefficients []float64     `json:"coefficients,omitempty"`
	HighestOrder int           `json:"highest_order"`
	ReducedForm  string        `json:"reduced_form,omitempty"`
	PrettyForm   string        `json:"pretty_form,omitempty"`
	Solution     *SolutionView `json:"solution,omitempty"`
	Failure      string        `json:"failure,omitempty"`
	Error        string        `json:"error,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// View converts a report to its JSON shape.
func View(report *domain.Report) ReportView {
	v := ReportView{
		ID:           report.ID,
		Input:        report.Input,
		Symbol:       report.Symbol,
		LeftTerms:    termViews(report.LeftTerms),
		RightTerms:   termViews(report.RightTerms),
		Coefficients: report.Coefficients,
		HighestOrder: report.HighestOrder,
		ReducedForm:  report.ReducedForm,
		PrettyForm:   report.PrettyForm,
		Failure:      report.Failure.String(),
		Error:        report.Error,
		CreatedAt:    report.CreatedAt,
	}
	if sol := report.Solution; sol != nil {
		sv := &SolutionView{
			Kind:   sol.Kind.String(),
			Degree: sol.Degree,
			Roots:  sol.Roots,
		}
		if sv.Roots == nil {
			sv.Roots = []float64{}
		}
		if sol.Degree == 2 {
			d := sol.Discriminant
			sv.Discriminant = &d
		}
		v.Solution = sv
	}
	return v
}

// Views converts a list of reports.
func Views(reports []domain.Report) []ReportView {
	out := make([]ReportView, len(reports))
	for i := range reports {
		out[i] = View(&reports[i])
	}
	return out
}

func termViews(terms []domain.Term) []TermView {
	if len(terms) == 0 {
		return nil
	}
	out := make([]TermView, len(terms))
	for i, t := range terms {
		out[i] = TermView{Coefficient: t.Coefficient, Exponent: t.Exponent}
	}
	return out
}
