// Package names canonicalizes free-text employee names.
//
// NormalizeKey derives the stable grouping identity used everywhere punches,
// partner rules, and report rows are joined: case, diacritics, and whitespace
// runs are all erased so "JOÃO  DA  Silva " and "joão da silva" collapse to
// the same key. TitleCase produces the human-facing form and is applied only
// at presentation time, never for grouping.
package names
