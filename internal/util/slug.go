package util

import (
	"regexp"
	"strings"
)

// Characters that cannot appear in a slug. Unicode letters and digits are
// kept so CJK titles still produce a usable slug.
var (
	invalidSlugChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	repeatedDashes   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a book title. The same title always
// produces the same slug: lowercase, runs of punctuation and whitespace
// collapsed to a single dash, no leading or trailing dashes.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = invalidSlugChars.ReplaceAllString(slug, "-")
	slug = repeatedDashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
