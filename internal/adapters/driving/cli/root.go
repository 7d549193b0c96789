// Package cli provides the cobra command tree for the computor binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
	"github.com/custodia-labs/computor-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services wired into the commands.
var (
	solverService   driving.SolverService
	historyService  driving.HistoryService
	settingsService driving.SettingsService

	// watchSettings is nil when settings are not file-backed.
	watchSettings func(ctx context.Context) (<-chan struct{}, error)
)

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
	ephemeral bool
)

// Options carries the global flags a ServiceFactory needs.
type Options struct {
	// ConfigDir overrides ~/.computor.
	ConfigDir string

	// DataDir overrides ~/.computor/data.
	DataDir string

	// Ephemeral keeps configuration and history in memory only.
	Ephemeral bool
}

// Services groups the driving ports the commands use.
type Services struct {
	Solver   driving.SolverService
	History  driving.HistoryService
	Settings driving.SettingsService

	// WatchSettings, when set, reports changes to the settings source.
	// Long-running commands use it to pick up edits without a restart.
	WatchSettings func(ctx context.Context) (<-chan struct{}, error)
}

// ServiceFactory builds services once global flags are parsed.
// The returned close function releases any stores it opened.
type ServiceFactory func(opts Options) (*Services, func() error, error)

var (
	serviceFactory ServiceFactory
	closeServices  func() error
)

var rootCmd = &cobra.Command{
	Use:   "computor",
	Short: "Solve polynomial equations of degree 2 or lower",
	Long: `computor reads a single-variable polynomial equation such as

  5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0

reduces it to canonical form and prints its real solutions.

Every solve is recorded in a local history (~/.computor/data/history.db)
unless history is disabled in settings.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.computor)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.computor/data)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings and history in memory only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices wires services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		solverService, historyService, settingsService = nil, nil, nil
		watchSettings = nil
		return
	}
	solverService = s.Solver
	historyService = s.History
	settingsService = s.Settings
	watchSettings = s.WatchSettings
}

// SetServiceFactory registers the function that builds services after
// the global flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("Failed to close stores: %v", cerr)
		}
		closeServices = nil
	}
	return err
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if solverService != nil || serviceFactory == nil {
		return nil
	}

	svc, closer, err := serviceFactory(Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svc)
	closeServices = closer
	return nil
}

// errNotConfigured is returned when a command runs without its service.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
