package logger_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.scitex.ch/vessel/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{
			name:       "simple message",
			msg:        "switched active version to v1.2.0",
			goldenName: "info_basic",
		},
		{
			name:       "empty message",
			msg:        "",
			goldenName: "info_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("cleanup kept v0.9.0: artifact removal failed")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "wrapped standard error",
			err:        fmt.Errorf("loading catalog: %w", os.ErrNotExist),
			goldenName: "error_wrapped_std",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(os.ErrNotExist, "failed to read catalog"),
			goldenName: "error_zerr_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_NilErrorIsSilent(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	require.Empty(t, buf.Bytes())
}
