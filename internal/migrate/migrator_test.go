package migrate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"crate/internal/library"
	"crate/internal/logging"
	"crate/internal/migrate"
	"crate/internal/services"
	"crate/internal/testsupport"
)

func mkdirs(t *testing.T, base string, names ...string) {
	t.Helper()
	testsupport.MakeFolders(t, base, names...)
}

func dirExists(t *testing.T, base, name string) bool {
	t.Helper()
	info, err := os.Stat(filepath.Join(base, name))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func TestApplyRenames(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "beatles")

	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "The Beatles"})
	plan := migrate.BuildPlan([]string{"beatles"}, []migrate.Request{req})

	migrator := migrate.New(base, false, logging.NewNop())
	result := migrator.Apply(context.Background(), plan)

	if result.Renamed != 1 || result.Failed != 0 {
		t.Fatalf("result = %+v", result)
	}
	if dirExists(t, base, "beatles") {
		t.Error("source folder still present")
	}
	if !dirExists(t, base, "the-beatles") {
		t.Error("target folder not created")
	}
}

func TestApplyDryRunLeavesFilesystemAlone(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "beatles")

	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "The Beatles"})
	plan := migrate.BuildPlan([]string{"beatles"}, []migrate.Request{req})

	migrator := migrate.New(base, true, logging.NewNop())
	result := migrator.Apply(context.Background(), plan)

	if result.Renamed != 1 || result.Failed != 0 {
		t.Fatalf("result = %+v", result)
	}
	if !dirExists(t, base, "beatles") {
		t.Error("dry run moved the source folder")
	}
	if dirExists(t, base, "the-beatles") {
		t.Error("dry run created the target folder")
	}
}

func TestApplyNeverOverwrites(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "beatles")

	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "The Beatles"})
	plan := migrate.BuildPlan([]string{"beatles"}, []migrate.Request{req})

	// Target appears between planning and apply.
	mkdirs(t, base, "the-beatles")

	migrator := migrate.New(base, false, logging.NewNop())
	result := migrator.Apply(context.Background(), plan)

	if result.Failed != 1 {
		t.Fatalf("result = %+v, want one failure", result)
	}
	if !errors.Is(result.Failures[0], services.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", result.Failures[0])
	}
	if !dirExists(t, base, "beatles") {
		t.Error("source folder was moved despite occupied target")
	}
}

func TestApplyContinuesPastFailures(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "old-second")

	requests := []migrate.Request{
		{EntityID: 1, Name: "First", Target: "first", Accepted: []string{"first", "old-first"}},
		{EntityID: 2, Name: "Second", Target: "second", Accepted: []string{"second", "old-second"}},
	}
	// Planner sees both legacy folders; old-first vanishes before apply.
	plan := migrate.BuildPlan([]string{"old-first", "old-second"}, requests)

	migrator := migrate.New(base, false, logging.NewNop())
	result := migrator.Apply(context.Background(), plan)

	if result.Failed != 1 {
		t.Fatalf("Failed = %d, want 1 (missing source)", result.Failed)
	}
	if result.Renamed != 1 {
		t.Fatalf("Renamed = %d, want 1 (batch should continue)", result.Renamed)
	}
	if !dirExists(t, base, "second") {
		t.Error("surviving item was not renamed")
	}
}

func TestApplySkipsConflictAndCorrect(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "shared", "old-second")

	requests := []migrate.Request{
		{EntityID: 1, Name: "First", Target: "shared", Accepted: []string{"shared"}},
		{EntityID: 2, Name: "Second", Target: "shared", Accepted: []string{"shared", "old-second"}},
	}
	plan := migrate.BuildPlan([]string{"shared", "old-second"}, requests)

	migrator := migrate.New(base, false, logging.NewNop())
	result := migrator.Apply(context.Background(), plan)

	if result.Renamed != 0 || result.Failed != 0 {
		t.Fatalf("result = %+v, want everything skipped", result)
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
	if !dirExists(t, base, "old-second") {
		t.Error("conflicted folder was touched")
	}
}

func TestAcquireLockExcludesSecondRun(t *testing.T) {
	base := t.TempDir()

	release, err := migrate.AcquireLock(base)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}

	if _, err := migrate.AcquireLock(base); !errors.Is(err, services.ErrConflict) {
		t.Errorf("second acquire: expected ErrConflict, got %v", err)
	}

	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	release2, err := migrate.AcquireLock(base)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	if err := release2(); err != nil {
		t.Fatal(err)
	}
}
