package maptype

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FollowImports {
		t.Error("FollowImports should default to false")
	}
	if !cfg.IncludeHeader {
		t.Error("IncludeHeader should default to true")
	}
	if len(cfg.FileNames) != 1 {
		t.Errorf("FileNames = %v, want the entry name only", cfg.FileNames)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maptype.json")
	contents := `{
  "followImports": true,
  "includeHeader": false,
  "fileNames": ["src/types.ts"]
}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.FollowImports {
		t.Error("FollowImports not loaded")
	}
	if cfg.IncludeHeader {
		t.Error("IncludeHeader not overridden")
	}
	if len(cfg.FileNames) != 1 || cfg.FileNames[0] != "src/types.ts" {
		t.Errorf("FileNames = %v", cfg.FileNames)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maptype.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.IncludeHeader || len(cfg.FileNames) != 1 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	empty := filepath.Join(dir, "empty-files.json")
	if err := os.WriteFile(empty, []byte(`{"fileNames": []}`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadConfig(empty); err == nil {
		t.Error("expected validation error for empty fileNames")
	}
}
