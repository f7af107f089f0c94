package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scitex.ch/vessel/internal/adapters/probe"
	"go.scitex.ch/vessel/internal/core/domain"
)

func writeArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "env_v1.sif")
	require.NoError(t, os.WriteFile(path, []byte("sif"), 0o644))
	return path
}

func TestExecutor_CustomCommand(t *testing.T) {
	artifact := writeArtifact(t)

	t.Run("success", func(t *testing.T) {
		e := probe.NewExecutor(domain.ProbeConfig{Command: []string{"true"}, Timeout: 5 * time.Second})
		require.NoError(t, e.Run(context.Background(), artifact))
	})

	t.Run("failure", func(t *testing.T) {
		e := probe.NewExecutor(domain.ProbeConfig{Command: []string{"false"}, Timeout: 5 * time.Second})
		err := e.Run(context.Background(), artifact)
		require.Error(t, err)
		assert.ErrorContains(t, err, "probe execution failed")
	})
}

func TestExecutor_TimeoutIsFailure(t *testing.T) {
	artifact := writeArtifact(t)

	e := probe.NewExecutor(domain.ProbeConfig{
		Command: []string{"sh", "-c", "sleep 5"},
		Timeout: 100 * time.Millisecond,
	})

	start := time.Now()
	err := e.Run(context.Background(), artifact)
	require.Error(t, err)
	assert.ErrorContains(t, err, "probe timed out")
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestExecutor_MissingArtifact(t *testing.T) {
	e := probe.NewExecutor(domain.ProbeConfig{Command: []string{"true"}})

	err := e.Run(context.Background(), filepath.Join(t.TempDir(), "absent.sif"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactMissing.Error())
}

func TestExecutor_RuntimeDetection(t *testing.T) {
	artifact := writeArtifact(t)

	t.Run("no runtime available", func(t *testing.T) {
		e := probe.NewExecutor(domain.ProbeConfig{Timeout: time.Second})
		e.SetLookPath(func(string) (string, error) {
			return "", errors.New("not found")
		})

		err := e.Run(context.Background(), artifact)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrProbeUnavailable.Error())
	})

	t.Run("falls back to second candidate", func(t *testing.T) {
		e := probe.NewExecutor(domain.ProbeConfig{Timeout: time.Second})

		var asked []string
		e.SetLookPath(func(file string) (string, error) {
			asked = append(asked, file)
			if file == "singularity" {
				return "/usr/bin/singularity", nil
			}
			return "", errors.New("not found")
		})

		// The run itself fails because no real runtime exists here; the
		// detection order is what matters.
		_ = e.Run(context.Background(), artifact)
		assert.Equal(t, []string{"apptainer", "singularity"}, asked)
	})
}
