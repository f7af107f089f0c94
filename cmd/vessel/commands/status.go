package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show version state and collaborator health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")

			if watch {
				return c.watchStatus(cmd)
			}
			return c.printStatus(cmd)
		},
	}

	cmd.Flags().BoolP("watch", "w", false, "Re-render when the catalog changes")

	return cmd
}

func (c *CLI) printStatus(cmd *cobra.Command) error {
	report, err := c.app.Status(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonRequested(cmd) {
		return writeJSON(out, report)
	}
	_, _ = io.WriteString(out, RenderStatus(report))
	return nil
}

// watchStatus re-renders the report whenever the catalog file changes. It
// returns when the context is canceled.
func (c *CLI) watchStatus(cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// The catalog is replaced by rename, so watch its directory.
	dir := c.app.Config().ContainersDir
	if err := watcher.Add(dir); err != nil {
		return err
	}

	if err := c.printStatus(cmd); err != nil {
		return err
	}

	catalogPath := domain.CatalogPath(dir)
	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != catalogPath {
				continue
			}
			if err := c.printStatus(cmd); err != nil {
				return err
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.app.Logger().Warn("watch error: " + watchErr.Error())
		}
	}
}

// RenderStatus formats a status report as a human-readable summary.
func RenderStatus(report *domain.StatusReport) string {
	var b strings.Builder

	b.WriteString(style.Header.Render("vessel status") + "\n")

	if report.Active != nil {
		b.WriteString(style.Active.Render(fmt.Sprintf("  %s active: %s", style.Dot, report.Active.ID)) + "\n")
	} else {
		b.WriteString(style.Muted.Render("  no active version") + "\n")
	}
	if report.Previous != nil {
		b.WriteString(style.Previous.Render(fmt.Sprintf("  %s previous: %s", style.Circle, report.Previous.ID)) + "\n")
	}
	b.WriteString(style.Muted.Render(fmt.Sprintf("  versions: %d", report.VersionCount)) + "\n")

	if report.DefDrift != nil {
		b.WriteString(renderCheck("definition drift", *report.DefDrift) + "\n")
	}

	for _, ext := range report.External {
		b.WriteString(renderExternal(ext) + "\n")
	}
	return b.String()
}

func renderExternal(ext domain.ExternalStatus) string {
	line := fmt.Sprintf("  %s: %s", ext.Name, ext.State)
	if ext.Detail != "" {
		line += " (" + ext.Detail + ")"
	}
	switch ext.State {
	case domain.ExternalOK:
		return style.Active.Render(line)
	case domain.ExternalDegraded:
		return style.Failure.Render(line)
	default:
		return style.Muted.Render(line)
	}
}
