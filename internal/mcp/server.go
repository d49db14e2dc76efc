package mcpserver

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"graphar/internal/service"
)

// Server is the MCP server for the graphing pipeline. It exposes the
// dataset catalog and graph building as tools so agents can drive the
// same surface the AR host uses.
type Server struct {
	mcp *server.MCPServer

	// Services (injected by the caller)
	datasets *service.DatasetService
	graphs   *service.GraphService
}

// Deps holds all dependencies passed to the MCP server.
type Deps struct {
	Datasets *service.DatasetService
	Graphs   *service.GraphService
}

// New creates and configures an MCP server with all tools registered.
func New(deps Deps) *Server {
	s := &Server{
		datasets: deps.Datasets,
		graphs:   deps.Graphs,
	}

	s.mcp = server.NewMCPServer(
		"graphar-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerDatasetTools()
	s.registerGraphTools()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}

func boolPtr(v bool) *bool { return &v }
