package cli

import (
	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/cmd/logsleuth/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server",
	Long: `Run an MCP (Model Context Protocol) server over stdio.

Exposes the session store to LLM collaborators: listing sessions and logs,
creating log groups, assigning logs, and recording root-cause analysis.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	return mcp.StartServer(dbPath)
}
