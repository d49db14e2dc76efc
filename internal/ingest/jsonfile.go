package ingest

import (
	"context"
	"fmt"
	"os"
)

// ── JSON File Source ────────────────────────────────────────
// Reads a dataset document from a local JSON file.

type jsonFileSource struct{}

func init() { RegisterSource(&jsonFileSource{}) }

func (s *jsonFileSource) Spec() SourceSpec {
	return SourceSpec{
		Type:  "json_file",
		Label: "JSON File",
		ConfigFields: []ConfigField{
			{Key: "filePath", Label: "File Path", Required: true, Help: "Path to the dataset JSON file"},
		},
	}
}

func (s *jsonFileSource) Fetch(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	filePath, _ := cfg["filePath"].(string)
	if filePath == "" {
		return nil, fmt.Errorf("filePath is required")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}
	return data, nil
}
