package library

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"crate/internal/services"
)

//go:embed schema.sql
var schemaSQL string

// Store reads artist and release rows from the SQLite catalog. The
// catalog is treated as read-only input; crate never mutates it.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to an existing catalog database. A missing file is a
// fatal input error rather than a reason to create an empty catalog.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "library", "open", fmt.Sprintf("entity database %s does not exist", path), nil)
		}
		return nil, services.Wrap(services.ErrNotFound, "library", "open", "stat entity database", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.verifyTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// OpenOrCreate connects to the catalog, creating the schema when the
// file is absent. Intended for tests and fixture seeding.
func OpenOrCreate(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) verifyTables(ctx context.Context) error {
	for _, table := range []string{"artists", "releases"} {
		var name string
		err := s.db.QueryRowContext(
			ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
			table,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return services.Wrap(services.ErrValidation, "library", "open", fmt.Sprintf("catalog missing required table %q", table), nil)
		}
		if err != nil {
			return fmt.Errorf("inspect schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

// Artists returns all artist rows ordered by name.
func (s *Store) Artists(ctx context.Context) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, COALESCE(discogs_id, '') FROM artists ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.DiscogsID); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// Releases returns all release rows ordered by title.
func (s *Store) Releases(ctx context.Context) ([]Release, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, COALESCE(discogs_id, '') FROM releases ORDER BY title COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("query releases: %w", err)
	}
	defer rows.Close()

	var releases []Release
	for rows.Next() {
		var r Release
		if err := rows.Scan(&r.ID, &r.Title, &r.DiscogsID); err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		releases = append(releases, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate releases: %w", err)
	}
	return releases, nil
}

// ArtistIDsForRelease returns the artist rows linked to a release.
func (s *Store) ArtistIDsForRelease(ctx context.Context, releaseID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT artist_id FROM release_artists WHERE release_id = ? ORDER BY artist_id`, releaseID)
	if err != nil {
		return nil, fmt.Errorf("query release artists: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan release artist: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate release artists: %w", err)
	}
	return ids, nil
}

// CheckHealth verifies connectivity and reports row counts.
func (s *Store) CheckHealth(ctx context.Context) (Health, error) {
	health := Health{Path: s.path}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&health.Artists); err != nil {
		return health, fmt.Errorf("count artists: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM releases`).Scan(&health.Releases); err != nil {
		return health, fmt.Errorf("count releases: %w", err)
	}
	return health, nil
}

// InsertArtist adds an artist row. Fixture helper for tests.
func (s *Store) InsertArtist(ctx context.Context, name, discogsID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO artists (name, discogs_id) VALUES (?, ?)`, name, nullableString(discogsID))
	if err != nil {
		return 0, fmt.Errorf("insert artist: %w", err)
	}
	return res.LastInsertId()
}

// InsertRelease adds a release row. Fixture helper for tests.
func (s *Store) InsertRelease(ctx context.Context, title, discogsID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO releases (title, discogs_id) VALUES (?, ?)`, title, nullableString(discogsID))
	if err != nil {
		return 0, fmt.Errorf("insert release: %w", err)
	}
	return res.LastInsertId()
}

// LinkReleaseArtist records a release to artist association.
func (s *Store) LinkReleaseArtist(ctx context.Context, releaseID, artistID int64) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO release_artists (release_id, artist_id) VALUES (?, ?)`, releaseID, artistID)
	if err != nil {
		return fmt.Errorf("link release artist: %w", err)
	}
	return nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
