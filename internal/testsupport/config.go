// Package testsupport provides fixtures shared across package tests:
// temp-directory configs, seeded catalogs, and library folder layouts.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"crate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The library base directories are created; the database file is not.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Database = filepath.Join(base, "collection.db")
	cfgVal.Paths.LibraryDir = filepath.Join(base, "library")
	cfgVal.Paths.ArtistsDir = "artist"
	cfgVal.Paths.ReleasesDir = "album"
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	for _, dir := range []string{cfgVal.ArtistsPath(), cfgVal.ReleasesPath(), cfgVal.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithThreshold overrides the fuzzy match threshold on the test config.
func WithThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.Threshold = threshold
	}
}
