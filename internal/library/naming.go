package library

import (
	"strconv"
	"strings"

	"crate/internal/services"
	"crate/internal/textutil"
)

// ArtistFolder returns the canonical folder name for an artist.
func ArtistFolder(a Artist) string {
	return textutil.Sanitize(a.Name)
}

// ArtistFolderAlternatives returns the canonical folder name followed by
// the accepted legacy variants, deduplicated.
func ArtistFolderAlternatives(a Artist) []string {
	return textutil.Alternatives(a.Name)
}

// ReleaseFolder returns the canonical folder name for a release. Release
// folders carry the external identifier as a suffix so two releases with
// the same title never collide.
func ReleaseFolder(r Release) string {
	return textutil.Sanitize(r.Title) + "-" + ReleaseKey(r)
}

// ReleaseFolderAlternatives returns the canonical release folder name
// followed by the accepted variants, each carrying the identifier suffix.
func ReleaseFolderAlternatives(r Release) []string {
	variants := textutil.Alternatives(r.Title)
	key := ReleaseKey(r)
	out := make([]string, 0, len(variants))
	seen := make(map[string]struct{}, len(variants))
	for _, variant := range variants {
		name := variant + "-" + key
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// ReleaseKey returns the identifier suffix carried by a release folder:
// the lowercased external identifier, or the row ID when none exists.
func ReleaseKey(r Release) string {
	if id := strings.TrimSpace(r.DiscogsID); id != "" {
		return strings.ToLower(id)
	}
	return strconv.FormatInt(r.ID, 10)
}

// ValidateArtist reports malformed artist rows.
func ValidateArtist(a Artist) error {
	if strings.TrimSpace(a.Name) == "" {
		return services.Wrap(services.ErrValidation, "library", "validate artist", "artist "+strconv.FormatInt(a.ID, 10)+" has an empty name", nil)
	}
	return nil
}

// ValidateRelease reports malformed release rows.
func ValidateRelease(r Release) error {
	if strings.TrimSpace(r.Title) == "" {
		return services.Wrap(services.ErrValidation, "library", "validate release", "release "+strconv.FormatInt(r.ID, 10)+" has an empty title", nil)
	}
	return nil
}
