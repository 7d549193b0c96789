package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
	historyYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded solves",
	Long:  `List, show and clear the equations solved so far.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a recorded solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a recorded solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded solve",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (default from settings)")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "output the report as JSON")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "confirm deletion")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	reports, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return writeJSON(cmd, render.Views(reports))
	}

	if len(reports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No solves recorded.")
		return nil
	}

	p := newPrinter(cmd)
	for i := range reports {
		r := &reports[i]
		status := outcome(r)
		line := fmt.Sprintf("%s  %s  %s  %s",
			shortID(r.ID), r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Input, status)
		if r.Failed() {
			p.failure(line)
		} else {
			p.line(line)
		}
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	report, err := findReport(cmd, args[0])
	if err != nil {
		return err
	}

	if historyJSON {
		return writeJSON(cmd, render.View(report))
	}

	p := newPrinter(cmd)
	p.title(report.Input)
	p.muted(fmt.Sprintf("ID: %s", report.ID))
	p.muted(fmt.Sprintf("Solved: %s", report.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	p.blank()

	summary := render.Summarize(report, displaySettings())
	for _, line := range summary.Lines() {
		p.line(line)
	}
	if summary.Failure != "" {
		p.failure(summary.Failure)
		if report.Error != "" {
			p.muted(report.Error)
		}
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	report, err := findReport(cmd, args[0])
	if err != nil {
		return err
	}
	if err := historyService.Delete(cmd.Context(), report.ID); err != nil {
		return fmt.Errorf("failed to delete %s: %w", report.ID, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", report.ID)
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}
	if !historyYes {
		return fmt.Errorf("%w: pass --yes to delete every recorded solve", domain.ErrInvalidInput)
	}

	n, err := historyService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", n)
	return nil
}

// findReport resolves a full ID, or a unique prefix of one as printed by list.
func findReport(cmd *cobra.Command, id string) (*domain.Report, error) {
	report, err := historyService.Get(cmd.Context(), id)
	if err == nil {
		return report, nil
	}

	reports, lerr := historyService.List(cmd.Context(), -1)
	if lerr != nil {
		return nil, fmt.Errorf("failed to get %s: %w", id, err)
	}

	var match *domain.Report
	for i := range reports {
		if !strings.HasPrefix(reports[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: id prefix %q is ambiguous", domain.ErrInvalidInput, id)
		}
		match = &reports[i]
	}
	if match == nil {
		return nil, fmt.Errorf("failed to get %s: %w", id, err)
	}
	return match, nil
}

// outcome summarises a report in a few words for list output.
func outcome(r *domain.Report) string {
	if r.Failed() {
		return r.Failure.String()
	}
	if r.Solution == nil {
		return ""
	}
	roots := make([]string, len(r.Solution.Roots))
	for i, root := range r.Solution.Roots {
		roots[i] = domain.FormatNumber(root, -1)
	}
	if len(roots) == 0 {
		return r.Solution.Kind.String()
	}
	return r.Solution.Kind.String() + " " + strings.Join(roots, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
