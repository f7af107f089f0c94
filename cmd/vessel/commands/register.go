package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/engine/lifecycle"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <version> <artifact>",
		Short: "Record a built container image in the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defPath, _ := cmd.Flags().GetString("def")
			lockFiles, _ := cmd.Flags().GetStringSlice("lock")

			v, err := c.app.Register(cmd.Context(), lifecycle.RegisterParams{
				ID:           args[0],
				ArtifactPath: args[1],
				DefPath:      defPath,
				LockFiles:    lockFiles,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, v)
			}
			_, _ = fmt.Fprintln(out, style.Active.Render(fmt.Sprintf("%s registered %s", style.Check, v.ID)))
			return nil
		},
	}

	cmd.Flags().String("def", "", "Definition file the image was built from")
	cmd.Flags().StringSlice("lock", nil, "Dependency lock file next to the artifact (repeatable)")

	return cmd
}
