package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Swap back to the previously active version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Rollback(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, result)
			}
			_, _ = fmt.Fprintln(out, renderSwitchResult(result))
			return nil
		},
	}
}
