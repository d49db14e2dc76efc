package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"graphar/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GRAPHAR_DATA_DIR", "")
	t.Setenv("GRAPHAR_THEME", "")

	c, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DefaultTheme != "classic" {
		t.Fatalf("theme = %q, want classic", c.DefaultTheme)
	}
	if !strings.HasSuffix(c.DataDir, filepath.Join(".graphar", "datasets")) {
		t.Fatalf("data dir = %q", c.DataDir)
	}
	if c.WholeDatasetSniffing {
		t.Fatal("sniffing should default off")
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("GRAPHAR_DATA_DIR", "")
	t.Setenv("GRAPHAR_THEME", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
data_dir = "/srv/graphar/data"
default_theme = "contrast"
whole_dataset_sniffing = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DataDir != "/srv/graphar/data" {
		t.Fatalf("data dir = %q", c.DataDir)
	}
	if c.DefaultTheme != "contrast" {
		t.Fatalf("theme = %q", c.DefaultTheme)
	}
	if !c.WholeDatasetSniffing {
		t.Fatal("sniffing not read from file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_dir = "/from/file"`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GRAPHAR_DATA_DIR", "/from/env")
	t.Setenv("GRAPHAR_THEME", "contrast")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DataDir != "/from/env" {
		t.Fatalf("data dir = %q, want env override", c.DataDir)
	}
	if c.DefaultTheme != "contrast" {
		t.Fatalf("theme = %q, want env override", c.DefaultTheme)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`data_dir = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
