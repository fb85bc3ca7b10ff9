package names_test

import (
	"testing"

	"timecard/internal/names"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"uppercase with accents", "JOÃO  DA  Silva ", "joao da silva"},
		{"already canonical", "joão da silva", "joao da silva"},
		{"tabs and newlines", "Maria\tde\nSouza", "maria de souza"},
		{"cedilla", "Conceição Gonçalves", "conceicao goncalves"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"single token", "ADMIN", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := names.NormalizeKey(tc.input); got != tc.expected {
				t.Fatalf("NormalizeKey(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeKeyMatchesAcrossVariants(t *testing.T) {
	if names.NormalizeKey("JOÃO  DA  Silva ") != names.NormalizeKey("joão da silva") {
		t.Fatal("expected accent and case variants to normalize to the same key")
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"JOÃO DA SILVA", "João Da Silva"},
		{"maria de souza", "Maria De Souza"},
		{"  conceição  ", "Conceição"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := names.TitleCase(tc.input); got != tc.expected {
			t.Fatalf("TitleCase(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
