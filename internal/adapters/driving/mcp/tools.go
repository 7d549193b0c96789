package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// defaultHistoryLimit caps list_history when no limit is given.
const defaultHistoryLimit = 10

// SolveInput is the input schema for the solve_equation tool.
type SolveInput struct {
	Equation string `json:"equation" jsonschema:"the polynomial equation, e.g. 5 * X^0 + 4 * X^1 = 4 * X^0"`
	Strict   bool   `json:"strict,omitempty" jsonschema:"reject characters the parser would otherwise skip"`
}

// SolveOutput is the output schema for the solve_equation tool.
type SolveOutput struct {
	Report  ReportOutput `json:"report"`
	Summary []string     `json:"summary"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 10)"`
}

// HistoryOutput is the output schema for the list_history tool.
type HistoryOutput struct {
	Reports []ReportOutput `json:"reports"`
	Count   int            `json:"count"`
}

// ReportOutput represents a single solve.
type ReportOutput struct {
	ID           string    `json:"id"`
	Input        string    `json:"input"`
	Symbol       string    `json:"symbol,omitempty"`
	HighestOrder int       `json:"highest_order"`
	ReducedForm  string    `json:"reduced_form,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Solution     string    `json:"solution,omitempty"`
	Roots        []float64 `json:"roots,omitempty"`
	Discriminant *float64  `json:"discriminant,omitempty"`
	Failure      string    `json:"failure,omitempty"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "solve_equation",
		Description: "Reduce a single-variable polynomial equation of degree 2 or lower and return its real solutions",
	}, s.handleSolve)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List recently solved equations, newest first",
		}, s.handleListHistory)
	}
}

// handleSolve handles the solve_equation tool invocation.
// Solve failures are part of the output; only infrastructure errors are returned.
func (s *Server) handleSolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	report, err := s.ports.Solver.Solve(ctx, input.Equation, domain.SolveOptions{Strict: input.Strict})
	if err != nil && domain.FailureOf(err) == domain.FailureNone {
		return nil, SolveOutput{}, err
	}

	summary := render.Summarize(report, s.ports.display())
	lines := summary.Lines()
	if summary.Failure != "" {
		lines = append(lines, summary.Failure)
	}
	if lines == nil {
		lines = []string{}
	}

	return nil, SolveOutput{
		Report:  toReportOutput(report),
		Summary: lines,
	}, nil
}

// handleListHistory handles the list_history tool invocation.
func (s *Server) handleListHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	reports, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Reports: make([]ReportOutput, len(reports)),
		Count:   len(reports),
	}
	for i := range reports {
		output.Reports[i] = toReportOutput(&reports[i])
	}

	return nil, output, nil
}

func toReportOutput(r *domain.Report) ReportOutput {
	out := ReportOutput{
		ID:           r.ID,
		Input:        r.Input,
		Symbol:       r.Symbol,
		HighestOrder: r.HighestOrder,
		ReducedForm:  r.ReducedForm,
		Coefficients: r.Coefficients,
		Failure:      r.Failure.String(),
		Error:        r.Error,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if sol := r.Solution; sol != nil {
		out.Solution = sol.Kind.String()
		out.Roots = sol.Roots
		if sol.Degree == 2 {
			d := sol.Discriminant
			out.Discriminant = &d
		}
	}
	return out
}
