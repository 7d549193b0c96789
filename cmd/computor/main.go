// Command computor solves polynomial equations of degree 2 or lower.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/computor-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/computor-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/computor-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/computor-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/computor-cli/internal/core/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices opens the stores selected by the global flags and wires
// the core services over them.
func buildServices(opts cli.Options) (*cli.Services, func() error, error) {
	if opts.Ephemeral {
		config := memory.NewConfigStore()
		return newServices(config, memory.NewHistoryStore()), func() error { return nil }, nil
	}

	config, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}

	dataDir := opts.DataDir
	if dataDir == "" && opts.ConfigDir != "" {
		dataDir = filepath.Join(opts.ConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history: %w", err)
	}

	svc := newServices(config, store.HistoryStore())
	svc.WatchSettings = config.Watch
	return svc, store.Close, nil
}

func newServices(config driven.ConfigStore, history driven.HistoryStore) *cli.Services {
	return &cli.Services{
		Solver:   services.NewSolverService(config, history),
		History:  services.NewHistoryService(config, history),
		Settings: services.NewSettingsService(config),
	}
}
