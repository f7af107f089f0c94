// Package probe runs a minimal smoke execution of a container artifact
// before a switch commits it as active.
package probe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Probe = (*Executor)(nil)

// runtimeCandidates are the container runtimes tried in order when the
// config does not name a probe command.
var runtimeCandidates = []string{"apptainer", "singularity"}

// defaultProbeCommand is the minimal in-container command confirming the
// artifact starts at all.
var defaultProbeCommand = []string{"/bin/true"}

// Executor implements ports.Probe by executing the artifact synchronously
// with a bounded timeout. A timed-out probe is a failed probe.
type Executor struct {
	cfg domain.ProbeConfig

	// lookPath is swappable for tests.
	lookPath func(file string) (string, error)
}

// NewExecutor creates a probe executor with the given configuration.
func NewExecutor(cfg domain.ProbeConfig) *Executor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultProbeTimeout
	}
	return &Executor{cfg: cfg, lookPath: exec.LookPath}
}

// Run executes the smoke check. When the config names a probe command it is
// run directly with the artifact path appended; otherwise the detected
// container runtime executes a minimal command inside the artifact.
func (e *Executor) Run(ctx context.Context, artifactPath string) error {
	if _, err := os.Stat(artifactPath); err != nil {
		return zerr.With(domain.ErrArtifactMissing, "path", artifactPath)
	}

	argv, err := e.buildArgv(artifactPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Command comes from config or runtime detection
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zerr.With(zerr.New("probe timed out"), "artifact", artifactPath)
		}
		detail := strings.TrimSpace(string(output))
		if len(detail) > 200 {
			detail = detail[:200]
		}
		return zerr.With(zerr.Wrap(err, "probe execution failed"), "output", detail)
	}

	return nil
}

func (e *Executor) buildArgv(artifactPath string) ([]string, error) {
	if len(e.cfg.Command) > 0 {
		return append(append([]string{}, e.cfg.Command...), artifactPath), nil
	}

	runtime, err := e.detectRuntime()
	if err != nil {
		return nil, err
	}

	argv := []string{runtime, "exec", artifactPath}
	return append(argv, defaultProbeCommand...), nil
}

func (e *Executor) detectRuntime() (string, error) {
	for _, candidate := range runtimeCandidates {
		if _, err := e.lookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", domain.ErrProbeUnavailable
}
