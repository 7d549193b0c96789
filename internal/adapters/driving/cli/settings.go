package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change display, parser and history settings.

Settings are stored in ~/.computor/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  display.precision  decimals printed for fractional values (-1 = shortest exact, 0-15)
  display.pretty     print the reduced form with sign-aware joins (true/false)
  parser.strict      reject characters the parser would otherwise skip (true/false)
  history.enabled    record every solve (true/false)
  history.limit      default number of entries for "history list"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	p := newPrinter(cmd)
	p.title("Current Settings")
	p.line("================")
	p.blank()

	p.line("[Display]")
	p.line(fmt.Sprintf("  Precision: %s", precisionLabel(settings.Display.Precision)))
	p.line(fmt.Sprintf("  Pretty: %t", settings.Display.Pretty))
	p.blank()

	p.line("[Parser]")
	p.line(fmt.Sprintf("  Strict: %t", settings.Parser.Strict))
	p.blank()

	p.line("[History]")
	p.line(fmt.Sprintf("  Enabled: %t", settings.History.Enabled))
	p.line(fmt.Sprintf("  Limit: %d", settings.History.Limit))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key, value := args[0], strings.TrimSpace(args[1])
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w\nvalid keys: %s",
			key, err, strings.Join(settingsService.Keys(), ", "))
	}

	newPrinter(cmd).success(fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s restored to default\n", args[0])
	return nil
}

func precisionLabel(precision int) string {
	if precision < 0 {
		return "shortest exact"
	}
	return fmt.Sprintf("%d decimals", precision)
}
