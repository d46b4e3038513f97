package cli

import "strings"

// Keywords that mark a pasted line as reading-status report text rather
// than a bare book title. Report lines look like "01 書名 有更新", where
// the second field is the title.
var reportKeywords = []string{"有更新", "尚未閱讀", "無更新"}

// IsReportText reports whether the input looks like a pasted status report
// instead of a single book title.
func IsReportText(text string) bool {
	for _, keyword := range reportKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// TitlesFromReport extracts book titles from report text, one per non-empty
// line. Lines without a second field carry no title and are skipped.
func TitlesFromReport(text string) []string {
	var titles []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			titles = append(titles, fields[1])
		}
	}
	return titles
}

// Titles resolves one input line to the book titles it names: either the
// line itself, or the titles embedded in report text.
func Titles(line string) []string {
	if IsReportText(line) {
		return TitlesFromReport(line)
	}
	return []string{line}
}
