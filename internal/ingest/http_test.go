package ingest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"graphar/internal/ingest"
)

func TestFetchJSON(t *testing.T) {
	body := `{"name":"remote","description":"","data":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(body))
		case "/empty":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	data, err := ingest.FetchJSON(ctx, srv.URL+"/ok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(data) != body {
		t.Fatalf("body = %q", data)
	}

	_, err = ingest.FetchJSON(ctx, srv.URL+"/missing")
	var dlErr *ingest.DownloadFailedError
	if !errors.As(err, &dlErr) {
		t.Fatalf("404 error = %v, want DownloadFailedError", err)
	}

	if _, err := ingest.FetchJSON(ctx, srv.URL+"/empty"); !errors.Is(err, ingest.ErrNoData) {
		t.Fatalf("empty body error = %v, want ErrNoData", err)
	}
}

func TestFetchJSON_InvalidURL(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"", "not a url", "ftp://example.com/x.json", "/relative/path"} {
		if _, err := ingest.FetchJSON(ctx, raw); !errors.Is(err, ingest.ErrInvalidURL) {
			t.Fatalf("%q: error = %v, want ErrInvalidURL", raw, err)
		}
	}
}

func TestFetchJSON_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := ingest.FetchJSON(context.Background(), url)
	var dlErr *ingest.DownloadFailedError
	if !errors.As(err, &dlErr) {
		t.Fatalf("error = %v, want DownloadFailedError", err)
	}
}

func TestJSONFileSource(t *testing.T) {
	src, err := ingest.GetSource("json_file")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := src.Fetch(context.Background(), ingest.SourceConfig{"filePath": path})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty data")
	}
}

func TestJSONFileSource_EmptyFile(t *testing.T) {
	src, _ := ingest.GetSource("json_file")
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Fetch(context.Background(), ingest.SourceConfig{"filePath": path}); !errors.Is(err, ingest.ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestStubSources_NotImplemented(t *testing.T) {
	for _, typ := range []string{"csv_file", "rest"} {
		src, err := ingest.GetSource(typ)
		if err != nil {
			t.Fatalf("%s not registered: %v", typ, err)
		}
		if _, err := src.Fetch(context.Background(), ingest.SourceConfig{}); !errors.Is(err, ingest.ErrNotImplemented) {
			t.Fatalf("%s: error = %v, want ErrNotImplemented", typ, err)
		}
	}
}

func TestGetSource_Unknown(t *testing.T) {
	if _, err := ingest.GetSource("carrier_pigeon"); err == nil {
		t.Fatal("expected error for unknown source type")
	}
}

func TestListSources(t *testing.T) {
	specs := ingest.ListSources()
	seen := map[string]bool{}
	for _, s := range specs {
		seen[s.Type] = true
	}
	for _, typ := range []string{"json_file", "http", "csv_file", "rest"} {
		if !seen[typ] {
			t.Fatalf("source %s missing from list", typ)
		}
	}
}
