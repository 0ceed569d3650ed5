package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunFlagHandling(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version long", []string{"--version"}, 0},
		{"version short", []string{"-v"}, 0},
		{"help", []string{"--help"}, 0},
		{"unknown flag", []string{"--bogus"}, 1},
		{"config without path", []string{"--config"}, 1},
		{"no input", nil, 1},
		{"two inputs", []string{"a.ts", "b.ts"}, 1},
		{"missing file", []string{"does-not-exist.ts"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunGeneratesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.ts")
	if err := os.WriteFile(path, []byte(`export type Name = string;`), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	if got := run([]string{path}); got != 0 {
		t.Errorf("run = %d, want 0", got)
	}
	if got := run([]string{"--no-header", "--dump-types", path}); got != 0 {
		t.Errorf("run with dump = %d, want 0", got)
	}
}

func TestBuildConfigOverrides(t *testing.T) {
	cfg, err := buildConfig(cliOptions{followImports: true, noHeader: true})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !cfg.FollowImports {
		t.Error("FollowImports override not applied")
	}
	if cfg.IncludeHeader {
		t.Error("noHeader override not applied")
	}
}

func TestBuildConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maptype.json")
	if err := os.WriteFile(path, []byte(`{"followImports": true}`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := buildConfig(cliOptions{configPath: path})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}
	if !cfg.FollowImports {
		t.Error("config file value not loaded")
	}

	if _, err := buildConfig(cliOptions{configPath: filepath.Join(t.TempDir(), "nope.json")}); err == nil {
		t.Error("expected error for missing config file")
	}
}
