package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <version>",
		Short: "Make a version active after a smoke check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Switch(cmd.Context(), args[0])
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

func renderSwitchResult(result domain.SwitchResult) string {
	if !result.Changed {
		return style.Muted.Render(fmt.Sprintf("%s already active", result.Active))
	}
	line := fmt.Sprintf("%s active: %s", style.Check, result.Active)
	if result.Previous != "" {
		line += fmt.Sprintf(" (previous: %s)", result.Previous)
	}
	return style.Active.Render(line)
}
