package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marcassist/internal/adapters/driving/mcp"
	"github.com/custodia-labs/marcassist/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes Cutter generation and punctuation checking as tools,
and the active rule set as resources under marcassist://rules.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, for example to test with MCP Inspector.

When rules.watch is enabled the rule pack is reloaded whenever the pack
or options file changes.

Examples:
  # Stdio mode
  marcassist mcp serve

  # HTTP mode
  marcassist mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Cutter:      s.Cutter,
		Punctuation: s.Punctuation,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	startRuleWatch(ctx, s)

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// startRuleWatch reloads rules in the background when watching is enabled.
// Long-running commands call it; the watch stops with ctx.
func startRuleWatch(ctx context.Context, s *Services) {
	if s.Settings == nil || s.Punctuation == nil {
		return
	}
	settings, err := s.Settings.Get()
	if err != nil || !settings.Rules.Watch || !settings.Rules.IsConfigured() {
		return
	}

	go func() {
		if err := s.Punctuation.Watch(ctx); err != nil {
			logger.Warn("rule watch stopped: %v", err)
		}
	}()
}
