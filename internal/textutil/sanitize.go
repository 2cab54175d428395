package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// UnknownSlug is the fallback slug for names that sanitize to nothing.
const UnknownSlug = "unknown"

// emptyBracketLiterals are placeholder titles that carry no usable content.
var emptyBracketLiterals = map[string]struct{}{
	"()":  {},
	"( )": {},
	"[]":  {},
	"[ ]": {},
	"{}":  {},
	"{ }": {},
}

// bracketReplacer strips bracket characters while preserving their content.
var bracketReplacer = strings.NewReplacer(
	"[", "",
	"]", "",
	"{", "",
	"}", "",
)

// punctReplacer deletes punctuation that never separates words in a slug.
var punctReplacer = strings.NewReplacer(
	"&", "",
	"'", "",
	"\"", "",
	".", "",
	"!", "",
	"?", "",
	";", "",
	":", "",
)

// accentReplacer transliterates accented Latin characters to their ASCII base.
var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a", "ã", "a", "å", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o", "õ", "o", "ø", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ý", "y", "ÿ", "y",
	"ñ", "n",
	"ç", "c",
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ð", "d",
	"þ", "th",
)

// symbolReplacer maps numeric symbols to words or digits and dash-like
// punctuation to the plain dash. Word replacements carry a leading dash so
// they read as separate tokens ("4½" becomes "4-half"); digit replacements
// do not ("x²" becomes "x2").
var symbolReplacer = strings.NewReplacer(
	"½", "-half",
	"⅓", "-third",
	"¼", "-quarter",
	"¾", "-three-quarters",
	"⅛", "-eighth",
	"⅜", "-three-eighths",
	"⅝", "-five-eighths",
	"⅞", "-seven-eighths",
	"²", "2",
	"³", "3",
	"¹", "1",
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// removeReplacer deletes decorative, currency, and typographic quote symbols.
var removeReplacer = strings.NewReplacer(
	"°", "", "©", "", "®", "", "™", "",
	"‘", "", "’", "", "“", "", "”", "",
	"«", "", "»", "", "‹", "", "›", "", "„", "", "‚", "",
	"(", "", ")", "", "+", "", "=", "", "%", "",
	"@", "", "#", "", "$", "", "€", "", "£", "", "…", "",
)

// greekReplacer transliterates Greek letters to Latin approximations.
// Input is lowercased before this table applies; uppercase entries are kept
// so the table stands alone as the full documented mapping.
var greekReplacer = strings.NewReplacer(
	"Α", "a", "α", "a", "ά", "a", "Ά", "a",
	"Β", "b", "β", "b",
	"Γ", "g", "γ", "g",
	"Δ", "d", "δ", "d",
	"Ε", "e", "ε", "e", "έ", "e", "Έ", "e",
	"Ζ", "z", "ζ", "z",
	"Η", "e", "η", "e", "ή", "e", "Ή", "e",
	"Θ", "th", "θ", "th",
	"Ι", "i", "ι", "i", "ί", "i", "ϊ", "i", "ΐ", "i", "Ί", "i", "Ϊ", "i",
	"Κ", "k", "κ", "k",
	"Λ", "l", "λ", "l",
	"Μ", "m", "μ", "m",
	"Ν", "n", "ν", "n",
	"Ξ", "x", "ξ", "x",
	"Ο", "o", "ο", "o", "ό", "o", "Ό", "o",
	"Π", "p", "π", "p",
	"Ρ", "r", "ρ", "r",
	"Σ", "s", "σ", "s", "ς", "s",
	"Τ", "t", "τ", "t",
	"Υ", "u", "υ", "u", "ύ", "u", "ϋ", "u", "ΰ", "u", "Ύ", "u", "Ϋ", "u",
	"Φ", "f", "φ", "f",
	"Χ", "ch", "χ", "ch",
	"Ψ", "ps", "ψ", "ps",
	"Ω", "o", "ω", "o", "ώ", "o", "Ώ", "o",
)

// Sanitize converts a display name into the canonical folder slug: lowercase
// ASCII restricted to [a-z0-9-], no boundary or doubled dashes, never empty.
//
// The pipeline order is load-bearing: whitespace collapses before underscore
// resolution, transliteration tables apply before the blanket character
// filter, and the symbol table must run before the remove table so shared
// characters resolve by map order.
//
// Examples:
//
//	Sanitize("Björk")                // "bjork"
//	Sanitize("Children of the Sün") // "children-of-the-sun"
//	Sanitize("( )")                  // "unknown"
//	Sanitize("4½")                   // "4-half"
func Sanitize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return UnknownSlug
	}
	if _, ok := emptyBracketLiterals[trimmed]; ok {
		return UnknownSlug
	}

	// NFC so decomposed accent sequences hit the static tables.
	s := strings.ToLower(norm.NFC.String(name))
	s = collapseWhitespace(s)
	s = resolveUnderscores(s)
	s = bracketReplacer.Replace(s)
	s = punctReplacer.Replace(s)
	s = accentReplacer.Replace(s)
	s = symbolReplacer.Replace(s)
	s = removeReplacer.Replace(s)
	s = greekReplacer.Replace(s)
	s = filterSlugRunes(s)
	s = collapseDashes(s)
	s = strings.Trim(s, "-")
	if s == "" {
		return UnknownSlug
	}
	return s
}

// collapseWhitespace turns every run of Unicode whitespace into one dash.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// resolveUnderscores deletes an underscore between two single letters with no
// alphabetic continuation ("g_d" merges to "gd") and turns every remaining
// underscore into a dash. The scan consumes matched letters left to right, so
// "a_b_c" yields "ab-c", not "abc".
func resolveUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); {
		if isASCIILower(runes[i]) &&
			i+2 < len(runes) &&
			runes[i+1] == '_' &&
			isASCIILower(runes[i+2]) &&
			(i+3 >= len(runes) || !isASCIILower(runes[i+3])) {
			out = append(out, runes[i], runes[i+2])
			i += 3
			continue
		}
		if runes[i] == '_' {
			out = append(out, '-')
		} else {
			out = append(out, runes[i])
		}
		i++
	}
	return string(out)
}

// filterSlugRunes drops everything outside the slug alphabet [a-z0-9-].
func filterSlugRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIILower(r) || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseDashes reduces runs of two or more dashes to one.
func collapseDashes(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range s {
		if r == '-' {
			if lastDash {
				continue
			}
			lastDash = true
		} else {
			lastDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}
