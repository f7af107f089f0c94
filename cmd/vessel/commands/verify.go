package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [version]",
		Short: "Check a version's recorded fingerprints against disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}

			result, err := c.app.Verify(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonRequested(cmd) {
				return writeJSON(out, result)
			}
			_, _ = fmt.Fprint(out, RenderVerification(result))
			return nil
		},
	}
}

// RenderVerification formats a verification result as a human-readable
// report.
func RenderVerification(r *domain.VerificationResult) string {
	var b strings.Builder

	b.WriteString(style.Header.Render("verification: "+r.VersionID) + "\n")
	b.WriteString(renderCheck("artifact", r.Artifact) + "\n")
	b.WriteString(renderCheck("definition", r.DefOrigin) + "\n")

	names := make([]string, 0, len(r.Locks))
	for name := range r.Locks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(renderCheck("lock "+name, r.Locks[name]) + "\n")
	}

	if r.Overall {
		b.WriteString(style.Active.Render(style.Check+" overall: pass") + "\n")
	} else {
		b.WriteString(style.Failure.Render(style.Cross+" overall: fail") + "\n")
	}
	return b.String()
}

func renderCheck(name string, check domain.Check) string {
	switch check.Status {
	case domain.CheckPass:
		return style.Active.Render(fmt.Sprintf("  %s %s", style.Check, name))
	case domain.CheckFail:
		return style.Failure.Render(fmt.Sprintf("  %s %s: %s", style.Cross, name, check.Detail))
	default:
		return style.Muted.Render(fmt.Sprintf("  %s %s: skipped", style.Tilde, name))
	}
}
