package library_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"crate/internal/library"
	"crate/internal/services"
)

func seedStore(t *testing.T) (*library.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.db")
	store, err := library.OpenOrCreate(path)
	if err != nil {
		t.Fatalf("OpenOrCreate: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpenMissingDatabaseIsFatal(t *testing.T) {
	_, err := library.Open(filepath.Join(t.TempDir(), "absent.db"))
	if err == nil {
		t.Fatal("expected error for missing database")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !services.IsFatal(err) {
		t.Errorf("missing database should be fatal: %v", err)
	}
}

func TestOpenRejectsForeignSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE widgets (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	_, err = library.Open(path)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for foreign schema, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	seed, path := seedStore(t)

	beatlesID, err := seed.InsertArtist(ctx, "The Beatles", "A303")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := seed.InsertArtist(ctx, "aphex twin", ""); err != nil {
		t.Fatal(err)
	}
	abbeyID, err := seed.InsertRelease(ctx, "Abbey Road", "R1000")
	if err != nil {
		t.Fatal(err)
	}
	if err := seed.LinkReleaseArtist(ctx, abbeyID, beatlesID); err != nil {
		t.Fatal(err)
	}
	if err := seed.Close(); err != nil {
		t.Fatal(err)
	}

	store, err := library.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	artists, err := store.Artists(ctx)
	if err != nil {
		t.Fatalf("Artists: %v", err)
	}
	if len(artists) != 2 {
		t.Fatalf("len(artists) = %d, want 2", len(artists))
	}
	// NOCASE ordering puts aphex twin before The Beatles.
	if artists[0].Name != "aphex twin" || artists[1].Name != "The Beatles" {
		t.Errorf("unexpected ordering: %q, %q", artists[0].Name, artists[1].Name)
	}
	if artists[1].DiscogsID != "A303" {
		t.Errorf("DiscogsID = %q, want A303", artists[1].DiscogsID)
	}

	releases, err := store.Releases(ctx)
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}
	if len(releases) != 1 || releases[0].Title != "Abbey Road" {
		t.Fatalf("unexpected releases: %+v", releases)
	}

	linked, err := store.ArtistIDsForRelease(ctx, abbeyID)
	if err != nil {
		t.Fatalf("ArtistIDsForRelease: %v", err)
	}
	if len(linked) != 1 || linked[0] != beatlesID {
		t.Errorf("linked = %v, want [%d]", linked, beatlesID)
	}

	health, err := store.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if health.Artists != 2 || health.Releases != 1 {
		t.Errorf("health = %+v", health)
	}
	if health.Path != path {
		t.Errorf("health path = %q, want %q", health.Path, path)
	}
}
