package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive solver",
	Long: `Launch an interactive terminal session for solving equations.

Type an equation and press enter to solve it. Previous solves can be
browsed and recalled from the history view.

Controls:
  enter    Solve / recall
  tab      Toggle history
  ↑/↓      Navigate history
  ctrl+p   Toggle pretty reduced form
  ctrl+l   Clear
  f1       Toggle help
  esc      Back
  ctrl+c   Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newTUIApp(ctx context.Context) (*tui.App, error) {
	ports := tui.NewPorts(solverService, historyService, settingsService)
	if watchSettings != nil {
		changes, err := watchSettings(ctx)
		if err != nil {
			logger.Warn("Settings will not reload while the TUI runs: %v", err)
		} else {
			ports.SettingsChanges = changes
		}
	}
	return tui.NewApp(ports)
}
