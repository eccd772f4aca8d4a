package cmd

import (
	"time"

	"github.com/chris-regnier/diary/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the diary over
stdio transport. The server is read-only.

Available tools:
  - list_events: events and repeat occurrences within a window of days

Example usage in an MCP client config:
  {
    "mcpServers": {
      "diary": {
        "command": "/path/to/diary",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(eventStore, time.Now, Version)

	// stdout is reserved for the protocol; the logger writes to stderr
	logger.Info("starting MCP server", "transport", "stdio", "events", eventStore.Path())

	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
