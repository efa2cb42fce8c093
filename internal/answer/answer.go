package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "Ê" becomes "E".
// Chained transformers carry state, so each call gets its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}

// Normalize returns the comparison form of s.
//
// Normalization rules:
// - Comparison is case-insensitive (lower-cased)
// - Diacritics are removed ("Conclusão" matches "conclusao")
// - Surrounding whitespace is trimmed
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks(), strings.ToLower(s))
	if err != nil {
		// transform.String only fails on malformed transformer chains.
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}

// Matches reports whether candidate equals any of the accepted answers
// after normalization. An empty accepted set never matches.
func Matches(candidate string, accepted []string) bool {
	if len(accepted) == 0 {
		return false
	}
	want := Normalize(candidate)
	for _, a := range accepted {
		if Normalize(a) == want {
			return true
		}
	}
	return false
}
