package ingest

import "context"

// ── Declared-only sources ───────────────────────────────────
// CSV and REST ingestion are part of the source surface but have no
// implementation. They stay registered so callers can enumerate them;
// fetching reports ErrNotImplemented.

type csvFileSource struct{}

func init() { RegisterSource(&csvFileSource{}) }

func (s *csvFileSource) Spec() SourceSpec {
	return SourceSpec{
		Type:  "csv_file",
		Label: "CSV File",
		ConfigFields: []ConfigField{
			{Key: "filePath", Label: "File Path", Required: true},
		},
	}
}

func (s *csvFileSource) Fetch(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	return nil, ErrNotImplemented
}

type restSource struct{}

func init() { RegisterSource(&restSource{}) }

func (s *restSource) Spec() SourceSpec {
	return SourceSpec{
		Type:  "rest",
		Label: "REST API",
		ConfigFields: []ConfigField{
			{Key: "url", Label: "Endpoint URL", Required: true},
		},
	}
}

func (s *restSource) Fetch(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	return nil, ErrNotImplemented
}
