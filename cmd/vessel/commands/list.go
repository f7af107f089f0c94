package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered versions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, catalog)
			}

			if len(catalog.Versions) == 0 {
				_, _ = fmt.Fprintln(out, style.Muted.Render("no versions registered"))
				return nil
			}

			for _, v := range catalog.Sorted() {
				_, _ = fmt.Fprintln(out, renderVersionLine(catalog, v))
			}
			return nil
		},
	}
}

func renderVersionLine(catalog *domain.Catalog, v domain.Version) string {
	created := v.CreatedAt.Format("2006-01-02 15:04")
	size := artifactSize(v.ArtifactPath)
	switch v.ID {
	case catalog.Active:
		return style.Active.Render(fmt.Sprintf("%s %-12s %s  %8s  active", style.Dot, v.ID, created, size))
	case catalog.Previous:
		return style.Previous.Render(fmt.Sprintf("%s %-12s %s  %8s  previous", style.Circle, v.ID, created, size))
	default:
		return style.Muted.Render(fmt.Sprintf("%s %-12s %s  %8s", style.Circle, v.ID, created, size))
	}
}

// artifactSize reports the artifact's on-disk size, or "-" if the file
// cannot be stated.
func artifactSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	return formatBytes(info.Size())
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
