package cmd

import (
	"github.com/huangsam/timeslot/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Timeslot MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate schedules and check capacity via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The MCP protocol owns stdio, so startup must not require a
		// participant count; each tool call carries its own.
		return serveSetupWrapper(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, input)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
