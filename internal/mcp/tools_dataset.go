package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"graphar/internal/ingest"
)

func (s *Server) registerDatasetTools() {
	s.mcp.AddTool(mcp.NewTool("list_datasets",
		mcp.WithDescription("List the dataset catalog, newest first"),
	), s.handleListDatasets)

	s.mcp.AddTool(mcp.NewTool("show_dataset",
		mcp.WithDescription("Show a dataset's header, field names and record count"),
		mcp.WithString("name", mcp.Description("Dataset name"), mcp.Required()),
	), s.handleShowDataset)

	s.mcp.AddTool(mcp.NewTool("ingest_dataset",
		mcp.WithDescription("Validate a JSON dataset document and add it to the catalog. The document must be {name, description, data: [{category, ...numeric fields}]}."),
		mcp.WithString("document", mcp.Description("The dataset document as a JSON string"), mcp.Required()),
	), s.handleIngestDataset)

	s.mcp.AddTool(mcp.NewTool("fetch_dataset",
		mcp.WithDescription("Download a JSON dataset from a URL and ingest it (single attempt, no retry)"),
		mcp.WithString("url", mcp.Description("URL of the dataset JSON"), mcp.Required()),
	), s.handleFetchDataset)

	s.mcp.AddTool(mcp.NewTool("generate_dataset",
		mcp.WithDescription("Generate and ingest a synthetic immune-profile dataset (lymphoid, myeloid, -log10P over 7 conditions)"),
		mcp.WithString("count", mcp.Description("Number of records to generate"), mcp.Required()),
	), s.handleGenerateDataset)

	s.mcp.AddTool(mcp.NewTool("delete_dataset",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a dataset and its backing file"),
		mcp.WithString("name", mcp.Description("Dataset name"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteDataset)

	s.mcp.AddTool(mcp.NewTool("list_sources",
		mcp.WithDescription("List the available dataset source types and their config fields"),
	), s.handleListSources)
}

func (s *Server) handleListDatasets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	datasets := s.datasets.List()
	out := make([]map[string]any, 0, len(datasets))
	for _, d := range datasets {
		out = append(out, map[string]any{
			"name":        d.Name,
			"description": d.Description,
			"createdAt":   d.CreatedAt,
		})
	}
	return jsonResult(out)
}

func (s *Server) handleShowDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := req.GetArguments()["name"].(string)
	ds, err := s.datasets.Get(name)
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{
		"name":        ds.Name,
		"description": ds.Description,
		"source":      ds.SourceLocation,
		"fieldNames":  ds.FieldNames,
		"recordCount": len(ds.Records),
	})
}

func (s *Server) handleIngestDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, _ := req.GetArguments()["document"].(string)
	if document == "" {
		return nil, fmt.Errorf("document is required")
	}
	ds, result, err := s.datasets.Ingest(ctx, []byte(document), "mcp")
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{"dataset": ds.Name, "result": result})
}

func (s *Server) handleFetchDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, _ := req.GetArguments()["url"].(string)
	ds, result, err := s.datasets.IngestFrom(ctx, "http", ingest.SourceConfig{"url": url})
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{"dataset": ds.Name, "result": result})
}

func (s *Server) handleGenerateDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	countStr, _ := req.GetArguments()["count"].(string)
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, fmt.Errorf("count must be an integer: %w", err)
	}
	ds, result, err := s.datasets.Generate(ctx, count)
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{"dataset": ds.Name, "result": result})
}

func (s *Server) handleDeleteDataset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := req.GetArguments()["name"].(string)
	if err := s.datasets.Delete(ctx, name); err != nil {
		return nil, err
	}
	return textResult(fmt.Sprintf("deleted dataset %q", name)), nil
}

func (s *Server) handleListSources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(ingest.ListSources())
}
