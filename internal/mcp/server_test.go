package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scitex.ch/vessel/internal/adapters/catalog"
	"go.scitex.ch/vessel/internal/adapters/flock"
	"go.scitex.ch/vessel/internal/adapters/integrity"
	"go.scitex.ch/vessel/internal/adapters/logger"
	"go.scitex.ch/vessel/internal/adapters/probe"
	"go.scitex.ch/vessel/internal/adapters/slot"
	"go.scitex.ch/vessel/internal/app"
	"go.scitex.ch/vessel/internal/core/domain"
	"go.scitex.ch/vessel/internal/engine/lifecycle"
	"go.scitex.ch/vessel/internal/engine/status"
)

// newTestApp wires a real application over a temp directory. The probe runs
// a trivially succeeding command so switches commit.
func newTestApp(t *testing.T) (*app.App, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.ContainersDir = dir
	cfg.Probe = domain.ProbeConfig{Command: []string{"true"}, Timeout: 5 * time.Second}

	store := catalog.NewStore(dir)
	verifier := integrity.NewVerifier()
	prb := probe.NewExecutor(cfg.Probe)
	updater := slot.NewUpdater(domain.DefaultSlotPath(dir))
	locker := flock.NewLocker(domain.CatalogLockPath(dir), cfg.LockWait)

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})

	mgr := lifecycle.NewManager(store, verifier, prb, updater, locker, log)
	agg := status.NewAggregator(store, verifier)
	return app.New(mgr, agg, log, cfg), dir
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return tc.Text
}

func writeArtifact(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	return path
}

func TestHandlers_RegisterSwitchList(t *testing.T) {
	a, dir := newTestApp(t)
	h := &handlers{app: a}
	ctx := context.Background()

	artifact := writeArtifact(t, dir, "env_v1.sif")
	writeArtifact(t, dir, "requirements.lock")

	result, err := h.register(ctx, callRequest(map[string]any{
		"id":       "v1.0.0",
		"artifact": artifact,
		"locks":    []any{"requirements.lock"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var registered domain.Version
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &registered))
	assert.Contains(t, registered.LockHashes, "requirements.lock")
	assert.NotEmpty(t, registered.LockHashes["requirements.lock"])

	result, err = h.switchVersion(ctx, callRequest(map[string]any{"id": "v1.0.0"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var sw domain.SwitchResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &sw))
	assert.Equal(t, "v1.0.0", sw.Active)
	assert.True(t, sw.Changed)

	result, err = h.list(ctx, callRequest(nil))
	require.NoError(t, err)

	var cat domain.Catalog
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &cat))
	assert.Equal(t, "v1.0.0", cat.Active)
	assert.Len(t, cat.Versions, 1)
}

func TestHandlers_RollbackWithoutPrevious(t *testing.T) {
	a, _ := newTestApp(t)
	h := &handlers{app: a}

	result, err := h.rollback(context.Background(), callRequest(nil))
	require.NoError(t, err)

	// Domain failures map to tool errors, not protocol errors.
	assert.True(t, result.IsError)
}

func TestHandlers_SwitchUnknownVersion(t *testing.T) {
	a, _ := newTestApp(t)
	h := &handlers{app: a}

	result, err := h.switchVersion(context.Background(), callRequest(map[string]any{"id": "ghost"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandlers_VerifyAndStatus(t *testing.T) {
	a, dir := newTestApp(t)
	h := &handlers{app: a}
	ctx := context.Background()

	artifact := writeArtifact(t, dir, "env_v1.sif")
	_, err := h.register(ctx, callRequest(map[string]any{"id": "v1.0.0", "artifact": artifact}))
	require.NoError(t, err)
	_, err = h.switchVersion(ctx, callRequest(map[string]any{"id": "v1.0.0"}))
	require.NoError(t, err)

	result, err := h.verify(ctx, callRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var vr domain.VerificationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &vr))
	assert.Equal(t, "v1.0.0", vr.VersionID)
	assert.True(t, vr.Overall)

	result, err = h.status(ctx, callRequest(nil))
	require.NoError(t, err)

	var report domain.StatusReport
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &report))
	require.NotNil(t, report.Active)
	assert.Equal(t, "v1.0.0", report.Active.ID)
}

func TestHandlers_Cleanup(t *testing.T) {
	a, dir := newTestApp(t)
	h := &handlers{app: a}
	ctx := context.Background()

	for _, id := range []string{"v1", "v2", "v3"} {
		artifact := writeArtifact(t, dir, id+".sif")
		_, err := h.register(ctx, callRequest(map[string]any{"id": id, "artifact": artifact}))
		require.NoError(t, err)
	}
	_, err := h.switchVersion(ctx, callRequest(map[string]any{"id": "v3"}))
	require.NoError(t, err)

	result, err := h.cleanup(ctx, callRequest(map[string]any{"retain": 1}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var report domain.CleanupReport
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &report))
	assert.NotEmpty(t, report.RemovedIDs())
	assert.NotContains(t, report.RemovedIDs(), "v3")
}

func TestNewServer_RegistersTools(t *testing.T) {
	a, _ := newTestApp(t)
	s := NewServer(a)
	require.NotNil(t, s)
}
