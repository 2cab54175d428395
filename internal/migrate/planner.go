package migrate

import (
	"strings"
)

// Request describes one entity the planner should classify. Accepted
// holds the canonical folder name first, then the legacy variants the
// reconciler also recognizes. Key, when set, is an identifier suffix
// (release folders carry one) used to recognize renamed legacy folders.
type Request struct {
	EntityID int64
	Name     string
	Target   string
	Accepted []string
	Key      string
}

// Item is one planned classification.
type Item struct {
	EntityID int64
	Name     string
	Current  string
	Target   string
	Status   Status
}

// Plan holds the classification of an entire entity set against one
// folder listing.
type Plan struct {
	Items     []Item
	Correct   int
	Missing   int
	Conflicts int
	Renames   int
}

// BuildPlan classifies every request against the current folder listing.
// A folder is claimed by at most one entity, in request order.
func BuildPlan(folders []string, requests []Request) *Plan {
	available := make(map[string]struct{}, len(folders))
	for _, folder := range folders {
		available[folder] = struct{}{}
	}
	ordered := append([]string(nil), folders...)

	plan := &Plan{Items: make([]Item, 0, len(requests))}
	for _, req := range requests {
		item := Item{EntityID: req.EntityID, Name: req.Name, Target: req.Target}

		if _, ok := available[req.Target]; ok {
			delete(available, req.Target)
			item.Current = req.Target
			item.Status = StatusCorrect
			plan.Items = append(plan.Items, item)
			plan.Correct++
			continue
		}

		existing := findExisting(available, ordered, req)
		if existing == "" {
			item.Status = StatusMissing
			plan.Items = append(plan.Items, item)
			plan.Missing++
			continue
		}

		delete(available, existing)
		item.Current = existing

		// The target name can be occupied by a folder another entity
		// already claimed or by an unrelated directory. Renaming would
		// overwrite it, so the item is parked as a conflict.
		if contains(ordered, req.Target) {
			item.Status = StatusConflict
			plan.Items = append(plan.Items, item)
			plan.Conflicts++
			continue
		}

		item.Status = StatusNeedsMigration
		plan.Items = append(plan.Items, item)
		plan.Renames++
	}
	return plan
}

// findExisting looks for a legacy folder belonging to the request:
// accepted variants first, then mechanical lowercase forms of the
// display name, then an identifier-suffix scan.
func findExisting(available map[string]struct{}, ordered []string, req Request) string {
	for _, variant := range req.Accepted {
		if variant == req.Target {
			continue
		}
		if _, ok := available[variant]; ok {
			return variant
		}
	}

	for _, variant := range legacyVariants(req.Name) {
		if variant == req.Target {
			continue
		}
		if _, ok := available[variant]; ok {
			return variant
		}
	}

	if req.Key != "" {
		suffix := "-" + strings.ToLower(req.Key)
		for _, folder := range ordered {
			if _, ok := available[folder]; !ok {
				continue
			}
			if folder != req.Target && strings.HasSuffix(folder, suffix) {
				return folder
			}
		}
		return ""
	}

	// Entities without an identifier suffix fall back to a
	// leading-substring scan so truncated or over-long legacy spellings
	// still pair up ("the-beatles" vs "the-beatles-uk").
	for _, folder := range ordered {
		if _, ok := available[folder]; !ok {
			continue
		}
		if folder == req.Target {
			continue
		}
		if strings.HasPrefix(folder, req.Target+"-") || strings.HasPrefix(req.Target, folder+"-") {
			return folder
		}
	}

	return ""
}

// legacyVariants produces the mechanical folder spellings older tooling
// generated from a display name.
func legacyVariants(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	dashed := strings.ReplaceAll(lower, " ", "-")
	underscored := strings.ReplaceAll(lower, " ", "_")

	variants := []string{lower, dashed, underscored, asciiOnly(dashed)}
	out := variants[:0]
	seen := make(map[string]struct{}, len(variants))
	for _, variant := range variants {
		if variant == "" {
			continue
		}
		if _, ok := seen[variant]; ok {
			continue
		}
		seen[variant] = struct{}{}
		out = append(out, variant)
	}
	return out
}

func asciiOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
