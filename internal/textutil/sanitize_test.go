package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeKnownMappings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accented artist", "Björk", "bjork"},
		{"accented title", "Children of the Sün", "children-of-the-sun"},
		{"empty parens", "( )", "unknown"},
		{"empty string", "", "unknown"},
		{"whitespace only", "   ", "unknown"},
		{"empty brackets", "[]", "unknown"},
		{"empty braces", "{ }", "unknown"},
		{"vulgar fraction", "4½", "4-half"},
		{"single letter underscore", "G_d's Puzzle", "gds-puzzle"},
		{"word underscore", "The_Puzzle", "the-puzzle"},
		{"chained underscores", "a_b_c", "ab-c"},
		{"ampersand deleted", "Simon & Garfunkel", "simon-garfunkel"},
		{"slash dropped", "AC/DC", "acdc"},
		{"apostrophe", "Guns N' Roses", "guns-n-roses"},
		{"brackets keep content", "[Untitled]", "untitled"},
		{"parens removed", "Song (Live)", "song-live"},
		{"superscript digit", "Player²", "player2"},
		{"en dash", "Best – Hits", "best-hits"},
		{"em dash", "Now—Then", "now-then"},
		{"nordic", "Møtley Crüe", "motley-crue"},
		{"eszett", "Straße", "strasse"},
		{"ligature", "Encyclopædia", "encyclopaedia"},
		{"thorn and eth", "Þórður", "thordur"},
		{"greek theta", "Θ Eternal", "th-eternal"},
		{"greek word", "ψυχή", "psuche"},
		{"currency stripped", "£1 Fish", "1-fish"},
		{"trademark stripped", "Brand™", "brand"},
		{"curly quotes", "“Heroes”", "heroes"},
		{"ellipsis", "And So On…", "and-so-on"},
		{"punctuation run", "Wham!", "wham"},
		{"tabs and newlines", "one\ttwo\nthree", "one-two-three"},
		{"non-breaking space", "a\u00a0b", "a-b"},
		{"decomposed accent", "Bjo\u0308rk", "bjork"},
		{"symbols only", "©®™", "unknown"},
		{"unmapped script", "Мумий", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeCharacterDomain(t *testing.T) {
	inputs := []string{
		"Björk", "Children of the Sün", "G_d's Puzzle", "4½", "AC/DC",
		"Θ Eternal", "a b c", "__x__", "--y--", "( )", "100% Pure",
		"Sigur Rós ( )", "...", "Café del Mar", "!!!",
	}
	for _, input := range inputs {
		slug := Sanitize(input)
		if slug == "" {
			t.Fatalf("Sanitize(%q) returned empty string", input)
		}
		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Errorf("Sanitize(%q) = %q has boundary dash", input, slug)
		}
		if strings.Contains(slug, "--") {
			t.Errorf("Sanitize(%q) = %q contains doubled dash", input, slug)
		}
		for _, r := range slug {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
				t.Errorf("Sanitize(%q) = %q contains %q outside [a-z0-9-]", input, slug, r)
			}
		}
	}
}

func TestSanitizeDeterministic(t *testing.T) {
	inputs := []string{"Björk", "4½", "The Mars Volta", "", "Über Alles"}
	for _, input := range inputs {
		first := Sanitize(input)
		for i := 0; i < 3; i++ {
			if got := Sanitize(input); got != first {
				t.Fatalf("Sanitize(%q) not deterministic: %q then %q", input, first, got)
			}
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Björk", "Children of the Sün", "G_d's Puzzle", "4½", "( )",
		"Simon & Garfunkel", "Θ Eternal", "  spaced   out  ",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
