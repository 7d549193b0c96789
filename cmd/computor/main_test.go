package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

func TestBuildServices_Ephemeral(t *testing.T) {
	svc, closer, err := buildServices(cli.Options{Ephemeral: true})
	require.NoError(t, err)
	defer closer()
	assert.Nil(t, svc.WatchSettings)

	_, err = svc.Solver.Solve(context.Background(), "x = 1", domain.SolveOptions{})
	require.NoError(t, err)

	reports, err := svc.History.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestBuildServices_FileBacked(t *testing.T) {
	dir := t.TempDir()

	svc, closer, err := buildServices(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, svc.WatchSettings)

	require.NoError(t, svc.Settings.Set("display.pretty", "true"))
	_, err = svc.Solver.Solve(context.Background(), "x^2 = 4", domain.SolveOptions{})
	require.NoError(t, err)
	require.NoError(t, closer())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "data", "history.db"))

	// A second run sees both the setting and the recorded solve.
	svc, closer, err = buildServices(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer closer()

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.True(t, settings.Display.Pretty)

	reports, err := svc.History.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "x^2 = 4", reports[0].Input)
}

func TestBuildServices_SeparateDataDir(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()

	_, closer, err := buildServices(cli.Options{ConfigDir: configDir, DataDir: dataDir})
	require.NoError(t, err)
	require.NoError(t, closer())

	assert.FileExists(t, filepath.Join(dataDir, "history.db"))
	_, err = os.Stat(filepath.Join(configDir, "data"))
	assert.True(t, os.IsNotExist(err))
}
