package migrate_test

import (
	"testing"

	"crate/internal/library"
	"crate/internal/migrate"
)

func findItem(t *testing.T, plan *migrate.Plan, entityID int64) migrate.Item {
	t.Helper()
	for _, item := range plan.Items {
		if item.EntityID == entityID {
			return item
		}
	}
	t.Fatalf("no item for entity %d in %+v", entityID, plan.Items)
	return migrate.Item{}
}

func TestBuildPlanCorrect(t *testing.T) {
	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "Radiohead"})
	plan := migrate.BuildPlan([]string{"radiohead"}, []migrate.Request{req})

	item := findItem(t, plan, 1)
	if item.Status != migrate.StatusCorrect {
		t.Errorf("status = %v, want correct", item.Status)
	}
	if plan.Correct != 1 || plan.Renames != 0 {
		t.Errorf("plan counts = %+v", plan)
	}
}

func TestBuildPlanNeedsMigrationFromVariant(t *testing.T) {
	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "The Beatles"})
	plan := migrate.BuildPlan([]string{"beatles"}, []migrate.Request{req})

	item := findItem(t, plan, 1)
	if item.Status != migrate.StatusNeedsMigration {
		t.Fatalf("status = %v, want needs_migration", item.Status)
	}
	if item.Current != "beatles" || item.Target != "the-beatles" {
		t.Errorf("rename %q -> %q", item.Current, item.Target)
	}
}

func TestBuildPlanNeedsMigrationFromLegacySpelling(t *testing.T) {
	// Older tooling kept the accent and only dashed the whitespace.
	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "Sigur Rós"})
	plan := migrate.BuildPlan([]string{"sigur-rós"}, []migrate.Request{req})

	item := findItem(t, plan, 1)
	if item.Status != migrate.StatusNeedsMigration {
		t.Fatalf("status = %v, want needs_migration", item.Status)
	}
	if item.Current != "sigur-rós" || item.Target != "sigur-ros" {
		t.Errorf("rename %q -> %q", item.Current, item.Target)
	}
}

func TestBuildPlanMissing(t *testing.T) {
	req := migrate.ArtistRequest(library.Artist{ID: 1, Name: "Aphex Twin"})
	plan := migrate.BuildPlan([]string{"unrelated"}, []migrate.Request{req})

	item := findItem(t, plan, 1)
	if item.Status != migrate.StatusMissing {
		t.Errorf("status = %v, want missing", item.Status)
	}
	if plan.Missing != 1 {
		t.Errorf("plan.Missing = %d, want 1", plan.Missing)
	}
}

func TestBuildPlanConflict(t *testing.T) {
	requests := []migrate.Request{
		{EntityID: 1, Name: "First", Target: "shared", Accepted: []string{"shared"}},
		{EntityID: 2, Name: "Second", Target: "shared", Accepted: []string{"shared", "old-second"}},
	}
	plan := migrate.BuildPlan([]string{"shared", "old-second"}, requests)

	first := findItem(t, plan, 1)
	if first.Status != migrate.StatusCorrect {
		t.Errorf("first status = %v, want correct", first.Status)
	}
	second := findItem(t, plan, 2)
	if second.Status != migrate.StatusConflict {
		t.Errorf("second status = %v, want conflict", second.Status)
	}
	if second.Current != "old-second" {
		t.Errorf("second current = %q, want old-second", second.Current)
	}
	if plan.Conflicts != 1 {
		t.Errorf("plan.Conflicts = %d, want 1", plan.Conflicts)
	}
}

func TestBuildPlanArtistPrefixScan(t *testing.T) {
	// No variant matches outright, but the legacy folder extends the
	// target with an extra dash segment.
	req := migrate.ArtistRequest(library.Artist{ID: 4, Name: "The Beatles"})
	plan := migrate.BuildPlan([]string{"the-beatles-uk"}, []migrate.Request{req})

	item := findItem(t, plan, 4)
	if item.Status != migrate.StatusNeedsMigration {
		t.Fatalf("status = %v, want needs_migration", item.Status)
	}
	if item.Current != "the-beatles-uk" || item.Target != "the-beatles" {
		t.Errorf("rename %q -> %q", item.Current, item.Target)
	}
}

func TestBuildPlanPrefixScanIgnoresUnrelatedNames(t *testing.T) {
	req := migrate.ArtistRequest(library.Artist{ID: 5, Name: "Low"})
	plan := migrate.BuildPlan([]string{"lower-dens"}, []migrate.Request{req})

	item := findItem(t, plan, 5)
	if item.Status != migrate.StatusMissing {
		t.Errorf("status = %v, want missing", item.Status)
	}
}

func TestBuildPlanReleaseKeySuffixScan(t *testing.T) {
	req := migrate.ReleaseRequest(library.Release{ID: 9, Title: "Abbey Road", DiscogsID: "R55"})
	plan := migrate.BuildPlan([]string{"abby-road-r55"}, []migrate.Request{req})

	item := findItem(t, plan, 9)
	if item.Status != migrate.StatusNeedsMigration {
		t.Fatalf("status = %v, want needs_migration", item.Status)
	}
	if item.Current != "abby-road-r55" || item.Target != "abbey-road-r55" {
		t.Errorf("rename %q -> %q", item.Current, item.Target)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status migrate.Status
		want   string
	}{
		{migrate.StatusCorrect, "correct"},
		{migrate.StatusMissing, "missing"},
		{migrate.StatusConflict, "conflict"},
		{migrate.StatusNeedsMigration, "needs_migration"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
