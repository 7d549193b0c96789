package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	for _, name := range []string{"port", "rate", "burst"} {
		assert.NotNil(t, mcpServeCmd.Flags().Lookup(name), name)
	}
}

func TestNewMCPServer(t *testing.T) {
	t.Run("requires solver", func(t *testing.T) {
		t.Cleanup(resetCommandState)

		_, err := newMCPServer()

		assert.True(t, errors.Is(err, mcp.ErrMissingSolverService))
	})

	t.Run("wires services", func(t *testing.T) {
		setupTestServices(t)

		server, err := newMCPServer()

		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestRateLimitFlags(t *testing.T) {
	t.Cleanup(resetCommandState)

	limit, err := rateLimitFlags(mcpServeCmd)
	require.NoError(t, err)
	assert.Equal(t, mcp.DefaultRateLimit, limit)

	require.NoError(t, mcpServeCmd.Flags().Set("rate", "0"))
	limit, err = rateLimitFlags(mcpServeCmd)
	require.NoError(t, err)
	assert.False(t, limit.Enabled())

	require.NoError(t, mcpServeCmd.Flags().Set("burst", "-1"))
	_, err = rateLimitFlags(mcpServeCmd)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
