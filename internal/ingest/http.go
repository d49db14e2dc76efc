package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ── HTTP Source ─────────────────────────────────────────────
// Fetches a dataset document from a remote URL. One attempt, success or
// failure reported once; retries happen only by explicit user re-action.

type httpSource struct{}

func init() { RegisterSource(&httpSource{}) }

func (s *httpSource) Spec() SourceSpec {
	return SourceSpec{
		Type:  "http",
		Label: "Remote JSON",
		ConfigFields: []ConfigField{
			{Key: "url", Label: "URL", Required: true, Help: "Full URL of the dataset JSON"},
		},
	}
}

func (s *httpSource) Fetch(ctx context.Context, cfg SourceConfig) ([]byte, error) {
	rawURL, _ := cfg["url"].(string)
	return FetchJSON(ctx, rawURL)
}

// FetchJSON downloads the document at rawURL in a single attempt.
// Failures are classified as ErrInvalidURL, *DownloadFailedError, or
// ErrNoData for an empty body.
func FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ErrInvalidURL
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &DownloadFailedError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &DownloadFailedError{Reason: fmt.Sprintf("http %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadFailedError{Reason: fmt.Sprintf("read body: %v", err)}
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}
	return data, nil
}
