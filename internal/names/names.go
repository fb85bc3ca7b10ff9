package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and removes combining diacritical marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// NormalizeKey canonicalizes a free-text name into a grouping key: trimmed,
// lowercased, diacritics stripped, whitespace runs collapsed to single spaces.
// Total over all inputs; an empty or blank name yields the empty key.
func NormalizeKey(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(trimmed)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// TitleCase formats a name for display by capitalizing each whitespace-delimited
// token. Diacritics are preserved; only casing changes.
func TitleCase(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(trimmed))
}
