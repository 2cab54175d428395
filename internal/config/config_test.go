package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crate/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for missing file at %s", path)
	}
	if cfg.Matching.Threshold != 0.8 {
		t.Errorf("default threshold = %v, want 0.8", cfg.Matching.Threshold)
	}
	if cfg.Matching.MaxCandidates != 3 {
		t.Errorf("default max_candidates = %d, want 3", cfg.Matching.MaxCandidates)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("default log format = %q, want console", cfg.Logging.Format)
	}
	if !filepath.IsAbs(cfg.Paths.Database) {
		t.Errorf("database path not absolute: %q", cfg.Paths.Database)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[paths]
database = "` + filepath.Join(dir, "collection.db") + `"
library_dir = "` + filepath.Join(dir, "library") + `"
artists_dir = "artist"
releases_dir = "album"
log_dir = "` + filepath.Join(dir, "logs") + `"

[matching]
threshold = 0.65
max_candidates = 5

[logging]
format = "JSON"
level = "DEBUG"
`
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %s, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Matching.Threshold != 0.65 {
		t.Errorf("threshold = %v, want 0.65", cfg.Matching.Threshold)
	}
	if cfg.Matching.MaxCandidates != 5 {
		t.Errorf("max_candidates = %d, want 5", cfg.Matching.MaxCandidates)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	wantArtists := filepath.Join(dir, "library", "artist")
	if got := cfg.ArtistsPath(); got != wantArtists {
		t.Errorf("ArtistsPath() = %q, want %q", got, wantArtists)
	}
	wantReleases := filepath.Join(dir, "library", "album")
	if got := cfg.ReleasesPath(); got != wantReleases {
		t.Errorf("ReleasesPath() = %q, want %q", got, wantReleases)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[matching]\nthreshold = 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for threshold > 1")
	} else if !strings.Contains(err.Error(), "matching.threshold") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsOverlappingDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[paths]\nartists_dir = \"music\"\nreleases_dir = \"music\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error when artist and release dirs collide")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[matching]") {
		t.Error("sample config missing [matching] section")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not detected")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := config.ExpandPath("~/library")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "library") {
		t.Errorf("ExpandPath(~/library) = %q", got)
	}
}
