// Package mcp provides an MCP (Model Context Protocol) server for apimap.
// This lets AI agents request surface maps through MCP tools instead of
// shelling out to the CLI and reading artifact files.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/apimap/apimap/internal/config"
	"github.com/apimap/apimap/internal/mapper"
	"github.com/apimap/apimap/internal/render"
	"github.com/apimap/apimap/internal/surface"
)

// Server wraps the MCP server with apimap-specific tools.
type Server struct {
	mcpServer *server.MCPServer
	root      string
}

// New creates an MCP server that maps projects under the given default root.
func New(root string, version string) *Server {
	mcpServer := server.NewMCPServer(
		"apimap",
		version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer: mcpServer,
		root:      root,
	}
	s.registerSurfaceTool()
	s.registerSummaryTool()
	return s
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerSurfaceTool registers the apimap_surface tool.
func (s *Server) registerSurfaceTool() {
	tool := mcp.NewTool("apimap_surface",
		mcp.WithDescription("Map the public API surface of C# projects under a root path. Returns one structured surface map per project: namespaces, types, methods, and properties with signatures and doc summaries."),
		mcp.WithString("root",
			mcp.Description("Root path to map (default: the server's working root)"),
		),
		mcp.WithString("project",
			mcp.Description("Only return the project with this name"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSurface)
}

// registerSummaryTool registers the apimap_summary tool.
func (s *Server) registerSummaryTool() {
	tool := mcp.NewTool("apimap_summary",
		mcp.WithDescription("Count the API surface of C# projects under a root path: projects, files, namespaces, types, methods. Cheap way to size a codebase before requesting the full map."),
		mcp.WithString("root",
			mcp.Description("Root path to map (default: the server's working root)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSummary)
}

func (s *Server) handleSurface(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	root := s.root
	if r, ok := args["root"].(string); ok && r != "" {
		root = r
	}
	projectFilter, _ := args["project"].(string)

	projects, _, err := s.run(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifacts := make(map[string]render.Artifact)
	for _, pm := range projects {
		if projectFilter != "" && pm.Name != projectFilter {
			continue
		}
		artifacts[pm.Name] = render.Artifact{Summary: pm.Summary, Files: pm.Files}
	}
	if projectFilter != "" && len(artifacts) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no project named %q under %s", projectFilter, root)), nil
	}

	data, err := json.MarshalIndent(artifacts, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	root := s.root
	if r, ok := args["root"].(string); ok && r != "" {
		root = r
	}

	_, summary, err := s.run(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// run executes the mapping pipeline for a root with its configured excludes.
func (s *Server) run(root string) ([]mapper.ProjectMap, surface.Summary, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, surface.Summary{}, err
	}
	return mapper.Run(mapper.Options{
		Root:     root,
		Excludes: cfg.Scan.Exclude,
	})
}
