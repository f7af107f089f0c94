package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove old versions, keeping the most recent ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			retain, _ := cmd.Flags().GetInt("retain")

			report, err := c.app.Cleanup(cmd.Context(), retain)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, report)
			}

			if len(report.Outcomes) == 0 {
				_, _ = fmt.Fprintln(out, style.Muted.Render("nothing to remove"))
				return nil
			}
			for _, o := range report.Outcomes {
				_, _ = fmt.Fprintln(out, renderCleanupOutcome(o))
			}
			return nil
		},
	}

	cmd.Flags().IntP("retain", "r", -1, "Number of recent versions to keep (default from config)")

	return cmd
}

func renderCleanupOutcome(o domain.CleanupOutcome) string {
	if o.Removed {
		return style.Active.Render(fmt.Sprintf("%s removed %s", style.Check, o.ID))
	}
	return style.Failure.Render(fmt.Sprintf("%s kept %s: %s", style.Cross, o.ID, o.Reason))
}
