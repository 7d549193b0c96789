package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can solve
equations and browse the solve history.

Tools:
  solve_equation   Solve one equation and return its report
  list_history     List recent solves

Resources:
  computor://history        Recent solves
  computor://history/{id}   A single solve

By default the server communicates over stdio using JSON-RPC.
Use --port to serve the streamable HTTP transport instead. HTTP requests
are rate limited (--rate requests per second, --burst; --rate 0 disables).

Examples:
  # Stdio mode (default)
  computor mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  computor mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "computor": {
        "command": "/path/to/computor",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond,
		"HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultRateLimit.BurstSize, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	if port > 0 {
		limit, err := rateLimitFlags(cmd)
		if err != nil {
			return err
		}
		server.SetRateLimit(limit)

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func newMCPServer() (*mcp.Server, error) {
	ports := &mcp.Ports{
		Solver:   solverService,
		History:  historyService,
		Settings: settingsService,
	}
	return mcp.NewServer(ports)
}

func rateLimitFlags(cmd *cobra.Command) (mcp.RateLimitConfig, error) {
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return mcp.RateLimitConfig{}, fmt.Errorf("getting rate flag: %w", err)
	}
	burst, err := cmd.Flags().GetInt("burst")
	if err != nil {
		return mcp.RateLimitConfig{}, fmt.Errorf("getting burst flag: %w", err)
	}
	if rps < 0 || burst < 0 {
		return mcp.RateLimitConfig{}, fmt.Errorf("%w: rate and burst must not be negative", domain.ErrInvalidInput)
	}
	return mcp.RateLimitConfig{RequestsPerSecond: rps, BurstSize: burst}, nil
}
