// Package mcp exposes the lifecycle operations as MCP tools over stdio so
// agent runtimes can drive version management.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.scitex.ch/vessel/internal/app"
	"go.scitex.ch/vessel/internal/build"
	"go.scitex.ch/vessel/internal/engine/lifecycle"
)

// Serve runs the MCP server on stdio until the stream closes.
func Serve(_ context.Context, a *app.App) error {
	return server.ServeStdio(NewServer(a))
}

// NewServer builds the MCP server with all lifecycle tools registered.
func NewServer(a *app.App) *server.MCPServer {
	s := server.NewMCPServer("vessel", build.Version,
		server.WithToolCapabilities(false),
	)

	h := &handlers{app: a}

	s.AddTool(mcp.NewTool("container_list",
		mcp.WithDescription("List registered container versions with the active and previous pointers"),
	), h.list)

	s.AddTool(mcp.NewTool("container_register",
		mcp.WithDescription("Record a built container image in the catalog"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Semantic version string")),
		mcp.WithString("artifact", mcp.Required(), mcp.Description("Path to the built image")),
		mcp.WithString("def", mcp.Description("Definition file the image was built from")),
		mcp.WithArray("locks",
			mcp.Description("Dependency lock files next to the artifact to fingerprint"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.register)

	s.AddTool(mcp.NewTool("container_switch",
		mcp.WithDescription("Make a version active after a smoke check"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Version to activate")),
	), h.switchVersion)

	s.AddTool(mcp.NewTool("container_rollback",
		mcp.WithDescription("Swap back to the previously active version"),
	), h.rollback)

	s.AddTool(mcp.NewTool("container_deploy",
		mcp.WithDescription("Switch to a version and point the active slot at it"),
		mcp.WithString("id", mcp.Required(), mcp.Description("Version to deploy")),
	), h.deploy)

	s.AddTool(mcp.NewTool("container_cleanup",
		mcp.WithDescription("Remove old versions, keeping the most recent ones"),
		mcp.WithNumber("retain", mcp.Description("Number of recent versions to keep")),
	), h.cleanup)

	s.AddTool(mcp.NewTool("container_verify",
		mcp.WithDescription("Check a version's recorded fingerprints against disk"),
		mcp.WithString("id", mcp.Description("Version to verify; defaults to the active version")),
	), h.verify)

	s.AddTool(mcp.NewTool("container_status",
		mcp.WithDescription("Show version state and collaborator health"),
	), h.status)

	return s
}

type handlers struct {
	app *app.App
}

func (h *handlers) list(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := h.app.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(catalog)
}

func (h *handlers) register(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	artifact, err := req.RequireString("artifact")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, err := h.app.Register(ctx, lifecycle.RegisterParams{
		ID:           id,
		ArtifactPath: artifact,
		DefPath:      req.GetString("def", ""),
		LockFiles:    req.GetStringSlice("locks", nil),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(v)
}

func (h *handlers) switchVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.app.Switch(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *handlers) rollback(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.app.Rollback(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *handlers) deploy(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.app.Deploy(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *handlers) cleanup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	retain := req.GetInt("retain", -1)

	report, err := h.app.Cleanup(ctx, retain)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report)
}

func (h *handlers) verify(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.app.Verify(ctx, req.GetString("id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

func (h *handlers) status(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.app.Status(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
