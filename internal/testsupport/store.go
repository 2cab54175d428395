package testsupport

import (
	"context"
	"testing"

	"crate/internal/config"
	"crate/internal/library"
)

// SeedEntities describes catalog fixture rows.
type SeedEntities struct {
	Artists  []library.Artist
	Releases []library.Release
}

// SeedCatalog creates the catalog database behind cfg and inserts the
// provided rows. Row IDs in the fixture structs are ignored; the
// assigned identifiers are returned through the output slices.
func SeedCatalog(t testing.TB, cfg *config.Config, seed SeedEntities) ([]library.Artist, []library.Release) {
	t.Helper()
	ctx := context.Background()

	store, err := library.OpenOrCreate(cfg.Paths.Database)
	if err != nil {
		t.Fatalf("create catalog: %v", err)
	}
	defer store.Close()

	artists := make([]library.Artist, 0, len(seed.Artists))
	for _, artist := range seed.Artists {
		id, err := store.InsertArtist(ctx, artist.Name, artist.DiscogsID)
		if err != nil {
			t.Fatalf("insert artist %q: %v", artist.Name, err)
		}
		artist.ID = id
		artists = append(artists, artist)
	}

	releases := make([]library.Release, 0, len(seed.Releases))
	for _, release := range seed.Releases {
		id, err := store.InsertRelease(ctx, release.Title, release.DiscogsID)
		if err != nil {
			t.Fatalf("insert release %q: %v", release.Title, err)
		}
		release.ID = id
		releases = append(releases, release)
	}

	return artists, releases
}
