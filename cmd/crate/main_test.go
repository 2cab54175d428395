package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"crate/internal/library"
)

type cliFixture struct {
	configPath  string
	database    string
	artistsDir  string
	releasesDir string
}

func newCLIFixture(t *testing.T) cliFixture {
	t.Helper()
	base := t.TempDir()

	fix := cliFixture{
		configPath:  filepath.Join(base, "config.toml"),
		database:    filepath.Join(base, "collection.db"),
		artistsDir:  filepath.Join(base, "library", "artist"),
		releasesDir: filepath.Join(base, "library", "album"),
	}
	for _, dir := range []string{fix.artistsDir, fix.releasesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	content := `
[paths]
database = "` + fix.database + `"
library_dir = "` + filepath.Join(base, "library") + `"
artists_dir = "artist"
releases_dir = "album"
log_dir = "` + filepath.Join(base, "logs") + `"
`
	if err := os.WriteFile(fix.configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fix
}

func (f cliFixture) seed(t *testing.T, artists []library.Artist, releases []library.Release) {
	t.Helper()
	ctx := context.Background()
	store, err := library.OpenOrCreate(f.database)
	if err != nil {
		t.Fatalf("create catalog: %v", err)
	}
	defer store.Close()
	for _, artist := range artists {
		if _, err := store.InsertArtist(ctx, artist.Name, artist.DiscogsID); err != nil {
			t.Fatal(err)
		}
	}
	for _, release := range releases {
		if _, err := store.InsertRelease(ctx, release.Title, release.DiscogsID); err != nil {
			t.Fatal(err)
		}
	}
}

func (f cliFixture) mkArtistFolders(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.Mkdir(filepath.Join(f.artistsDir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
