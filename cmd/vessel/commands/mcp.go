package commands

import (
	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/mcp"
)

func (c *CLI) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the lifecycle operations over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Stdout carries the protocol stream; logs must not pollute it.
			c.app.Logger().SetOutput(cmd.ErrOrStderr())
			return mcp.Serve(cmd.Context(), c.app)
		},
	}
}
