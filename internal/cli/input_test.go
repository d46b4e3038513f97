package cli

import (
	"reflect"
	"testing"
)

func TestIsReportText(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected bool
	}{
		{"plain title", "Dune", false},
		{"update keyword", "01 詭秘之主 有更新", true},
		{"unread keyword", "02 大道朝天 尚未閱讀", true},
		{"no-update keyword", "03 凡人修仙傳 無更新", true},
		{"title containing spaces", "The Left Hand of Darkness", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsReportText(tc.text); got != tc.expected {
				t.Errorf("IsReportText(%q) = %v, want %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestTitlesFromReport(t *testing.T) {
	report := "01 詭秘之主 有更新\n02 大道朝天 尚未閱讀\n\n03 凡人修仙傳 無更新"
	expected := []string{"詭秘之主", "大道朝天", "凡人修仙傳"}
	if got := TitlesFromReport(report); !reflect.DeepEqual(got, expected) {
		t.Errorf("TitlesFromReport() = %v, want %v", got, expected)
	}

	// Lines without a second field carry no title.
	if got := TitlesFromReport("有更新"); got != nil {
		t.Errorf("Expected no titles from a bare keyword line, got %v", got)
	}
}

func TestTitles(t *testing.T) {
	if got := Titles("Dune"); !reflect.DeepEqual(got, []string{"Dune"}) {
		t.Errorf("Titles('Dune') = %v", got)
	}
	if got := Titles("01 詭秘之主 有更新"); !reflect.DeepEqual(got, []string{"詭秘之主"}) {
		t.Errorf("Titles(report line) = %v", got)
	}
}
