package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"graphar/internal/domain"
	"graphar/internal/scene"
)

func (s *Server) registerGraphTools() {
	s.mcp.AddTool(mcp.NewTool("list_graph_types",
		mcp.WithDescription("List the graph types the renderer registry supports"),
	), s.handleListGraphTypes)

	s.mcp.AddTool(mcp.NewTool("list_themes",
		mcp.WithDescription("List the available color themes"),
	), s.handleListThemes)

	s.mcp.AddTool(mcp.NewTool("build_graph",
		mcp.WithDescription("Build a scatter-plot scene graph for a dataset. Returns a scene summary: node counts per shape, axis projections and the node-map size. Features must be 2 or 3 numeric field names."),
		mcp.WithString("dataset", mcp.Description("Dataset name"), mcp.Required()),
		mcp.WithString("graphType", mcp.Description("Graph type: scatter_3d, scatter_3d_nogrid or scatter_2d"), mcp.Required()),
		mcp.WithString("features", mcp.Description(`JSON array of 2-3 numeric field names, e.g. ["lymphoid","myeloid"]`), mcp.Required()),
		mcp.WithString("categoryKey", mcp.Description(`Category field name (usually "category"); empty renders everything as "default"`)),
		mcp.WithString("themeId", mcp.Description("Theme id (default: classic)")),
	), s.handleBuildGraph)
}

func (s *Server) handleListGraphTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	supported := []domain.GraphType{}
	unsupported := []domain.GraphType{}
	all := []domain.GraphType{
		domain.GraphScatter3D, domain.GraphScatter3DNoGrid, domain.GraphScatter2D,
		domain.GraphSurface, domain.GraphHistogram, domain.GraphCluster,
	}
	for _, t := range all {
		if _, ok := scene.RendererFor(t); ok {
			supported = append(supported, t)
		} else {
			unsupported = append(unsupported, t)
		}
	}
	return jsonResult(map[string]any{"supported": supported, "unsupported": unsupported})
}

func (s *Server) handleListThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(scene.Themes())
}

func (s *Server) handleBuildGraph(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	datasetName, _ := args["dataset"].(string)
	graphType, _ := args["graphType"].(string)
	featuresJSON, _ := args["features"].(string)
	categoryKey, _ := args["categoryKey"].(string)
	themeID, _ := args["themeId"].(string)

	var features []string
	if err := json.Unmarshal([]byte(featuresJSON), &features); err != nil {
		return nil, fmt.Errorf("parse features: %w", err)
	}

	cfg, err := s.graphs.NewConfiguration(datasetName, domain.GraphType(graphType), features, categoryKey, themeID)
	if err != nil {
		return nil, err
	}

	root, nodes, err := s.graphs.BuildGraph(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"configuration": cfg.ID,
		"totalNodes":    root.Count(),
		"dataPoints":    len(nodes),
		"lines":         root.CountShape(scene.ShapeLine),
		"labels":        root.CountShape(scene.ShapeText),
	})
}
