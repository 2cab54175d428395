package textutil

import (
	"regexp"
	"strings"
)

// trailingPatterns strip historical suffixes before sanitizing: parenthetical
// qualifiers and featured-artist credits.
var trailingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+\(.*\)$`),
	regexp.MustCompile(`(?i)\s+featuring.*$`),
	regexp.MustCompile(`(?i)\s+feat\..*$`),
	regexp.MustCompile(`(?i)\s+ft\..*$`),
}

// Alternatives returns the canonical slug for name followed by legacy slug
// variants, deduplicated in first-seen order. Variants exist only so folders
// created under older naming rules still match; they are never used to name
// new folders.
//
// Variants, each generated independently of the others:
//   - the canonical slug of the name without a leading "the " article
//   - a legacy form with "&" spelled out as "and"
//   - the canonical slug with a trailing parenthetical or featuring credit
//     removed
func Alternatives(name string) []string {
	seen := make(map[string]struct{}, 4)
	slugs := make([]string, 0, 4)
	add := func(slug string) {
		if _, ok := seen[slug]; ok {
			return
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}

	add(Sanitize(name))

	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "the ") {
		add(Sanitize(name[4:]))
	}

	if strings.Contains(name, "&") {
		add(Sanitize(strings.ReplaceAll(lower, "&", "and")))
	}

	for _, pattern := range trailingPatterns {
		cleaned := pattern.ReplaceAllString(name, "")
		if cleaned != name {
			add(Sanitize(cleaned))
		}
	}

	return slugs
}
