package util

import "testing"

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Dune", "dune"},
		{"spaces become dashes", "The Left Hand of Darkness", "the-left-hand-of-darkness"},
		{"punctuation collapses", "Hello, World!!", "hello-world"},
		{"surrounding whitespace", "  Dune  ", "dune"},
		{"unicode letters kept", "詭秘之主", "詭秘之主"},
		{"mixed script", "詭秘之主 Lord of Mysteries", "詭秘之主-lord-of-mysteries"},
		{"digits kept", "Fahrenheit 451", "fahrenheit-451"},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.expected)
			}
		})
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	first := Slugify("A Wizard of Earthsea")
	second := Slugify("A Wizard of Earthsea")
	if first != second {
		t.Errorf("Slugify is not deterministic: %q vs %q", first, second)
	}
}
