package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

var (
	solveJSON      bool
	solvePretty    bool
	solveStrict    bool
	solveSteps     bool
	solveNoHistory bool
	solvePrecision int
)

var solveCmd = &cobra.Command{
	Use:   "solve [equation]",
	Short: "Solve a polynomial equation",
	Long: `Reduce a polynomial equation to the form "... = 0" and print its real solutions.

The equation must use a single indeterminate and reduce to degree 2 or lower.
Terms are written as coefficient * X^exponent; coefficients and exponents
may be omitted ("X" is 1 * X^1, "4" is 4 * X^0).

Examples:
  computor solve "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
  computor solve "x^2 = 4" --pretty
  computor solve "2x + 1 = 0" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output the report as JSON")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "print the reduced form with sign-aware joins")
	solveCmd.Flags().BoolVar(&solveStrict, "strict", false, "reject characters the parser would otherwise skip")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "print the parsed terms of each side")
	solveCmd.Flags().BoolVar(&solveNoHistory, "no-history", false, "do not record this solve")
	solveCmd.Flags().IntVarP(&solvePrecision, "precision", "p", -2,
		"decimals to print (-1 = shortest exact, default from settings)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solverService == nil {
		return errNotConfigured("solver")
	}

	display := displaySettings()
	if solvePretty {
		display.Pretty = true
	}
	if solvePrecision != -2 {
		if solvePrecision < -1 || solvePrecision > domain.MaxPrecision {
			return fmt.Errorf("%w: precision must be between -1 and %d", domain.ErrInvalidInput, domain.MaxPrecision)
		}
		display.Precision = solvePrecision
	}

	report, err := solverService.Solve(cmd.Context(), args[0], domain.SolveOptions{
		Strict:      solveStrict,
		SkipHistory: solveNoHistory,
	})

	if solveJSON {
		if jerr := writeJSON(cmd, render.View(report)); jerr != nil {
			return jerr
		}
		return err
	}

	p := newPrinter(cmd)
	if solveSteps {
		for _, line := range render.Steps(report) {
			p.muted(line)
		}
	}

	summary := render.Summarize(report, display)
	for _, line := range summary.Lines() {
		p.line(line)
	}
	if summary.Failure != "" {
		p.failure(summary.Failure)
	}

	return err
}

// displaySettings returns the configured display settings, or defaults
// when no settings service is wired.
func displaySettings() domain.DisplaySettings {
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Display
		}
	}
	return domain.DefaultAppSettings().Display
}
