package aspirantes

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD, drops combining marks and
// recomposes, so "Rodríguez" folds to "Rodriguez".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases s and strips diacritics. Used for slug generation and
// for the case- and accent-insensitive name filter.
func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// slugify builds the URL-safe identifier from a candidate's full name:
// lowercase, ASCII-folded, punctuation dropped, word runs joined with
// single hyphens.
func slugify(name string) string {
	folded := fold(name)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			pendingHyphen = true
		}
		// anything else (punctuation, symbols) is dropped without
		// forcing a hyphen
	}
	return b.String()
}
