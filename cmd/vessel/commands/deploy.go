package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <version>",
		Short: "Switch to a version and point the active slot at it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Deploy(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, result)
			}
			_, _ = fmt.Fprintln(out, renderSwitchResult(result.SwitchResult))
			_, _ = fmt.Fprintln(out, style.Muted.Render(fmt.Sprintf("slot: %s", result.SlotPath)))
			return nil
		},
	}
}
