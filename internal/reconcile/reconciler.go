package reconcile

import (
	"sort"

	"crate/internal/library"
	"crate/internal/textutil"
)

// Entity is one catalog row prepared for matching. Slugs holds the
// canonical folder name first, followed by the accepted variants.
type Entity struct {
	ID    int64
	Name  string
	Slugs []string
}

// Canonical returns the entity's canonical folder name.
func (e Entity) Canonical() string {
	if len(e.Slugs) == 0 {
		return textutil.UnknownSlug
	}
	return e.Slugs[0]
}

// ArtistEntity prepares an artist row for matching.
func ArtistEntity(a library.Artist) Entity {
	return Entity{ID: a.ID, Name: a.Name, Slugs: library.ArtistFolderAlternatives(a)}
}

// ReleaseEntity prepares a release row for matching.
func ReleaseEntity(r library.Release) Entity {
	return Entity{ID: r.ID, Name: r.Title, Slugs: library.ReleaseFolderAlternatives(r)}
}

// Candidate is a fuzzy suggestion pairing an orphaned folder with a
// missing entity.
type Candidate struct {
	Folder     string
	EntityID   int64
	EntityName string
	Score      float64
}

// Report summarizes one reconciliation pass.
type Report struct {
	Total              int
	ExactMatches       int
	AlternativeMatches int
	Missing            []Entity
	Orphaned           []string
	Candidates         []Candidate
}

// Matched returns the number of entities with a folder on disk.
func (r Report) Matched() int {
	return r.ExactMatches + r.AlternativeMatches
}

// Coverage returns the matched percentage across all entities.
func (r Report) Coverage() float64 {
	if r.Total == 0 {
		return 100
	}
	return float64(r.Matched()) / float64(r.Total) * 100
}

// Reconcile matches entities against on-disk folder names. Folders are
// consumed by the first entity whose slug claims them, in entity order,
// canonical slugs before variants.
func Reconcile(entities []Entity, folders []string, threshold float64) Report {
	report := Report{Total: len(entities)}

	available := make(map[string]struct{}, len(folders))
	for _, folder := range folders {
		available[folder] = struct{}{}
	}

	for _, entity := range entities {
		matched := false
		for i, slug := range entity.Slugs {
			if _, ok := available[slug]; !ok {
				continue
			}
			delete(available, slug)
			if i == 0 {
				report.ExactMatches++
			} else {
				report.AlternativeMatches++
			}
			matched = true
			break
		}
		if !matched {
			report.Missing = append(report.Missing, entity)
		}
	}

	for _, folder := range folders {
		if _, ok := available[folder]; ok {
			report.Orphaned = append(report.Orphaned, folder)
		}
	}

	report.Candidates = scoreCandidates(report.Orphaned, report.Missing, threshold)
	return report
}

// scoreCandidates compares every orphaned folder against every missing
// entity, scoring the folder against the entity's display name and each
// accepted slug and keeping the best ratio per pair.
func scoreCandidates(orphaned []string, missing []Entity, threshold float64) []Candidate {
	var candidates []Candidate
	for _, folder := range orphaned {
		for _, entity := range missing {
			best := textutil.Similarity(folder, entity.Name)
			for _, slug := range entity.Slugs {
				if score := textutil.Similarity(folder, slug); score > best {
					best = score
				}
			}
			if best >= threshold {
				candidates = append(candidates, Candidate{
					Folder:     folder,
					EntityID:   entity.ID,
					EntityName: entity.Name,
					Score:      best,
				})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
