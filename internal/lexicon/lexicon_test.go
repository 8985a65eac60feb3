package lexicon

import (
	"strings"
	"testing"
)

func TestListSizes(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want int
	}{
		{"left sources", LeftSources, 19},
		{"right sources", RightSources, 14},
		{"center sources", CenterSources, 13},
		{"left terms", LeftTerms, 16},
		{"right terms", RightTerms, 16},
		{"ad indicators", AdIndicators, 16},
		{"commerce url hints", CommerceURLHints, 7},
		{"reputable outlets", ReputableOutlets, 5},
		{"filler phrases", FillerPhrases, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.list); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchedListsAreLowercase(t *testing.T) {
	lists := map[string][]string{
		"left sources":       LeftSources,
		"right sources":      RightSources,
		"center sources":     CenterSources,
		"left terms":         LeftTerms,
		"right terms":        RightTerms,
		"ad indicators":      AdIndicators,
		"commerce url hints": CommerceURLHints,
	}

	for name, list := range lists {
		for _, entry := range list {
			if entry != strings.ToLower(entry) {
				t.Errorf("%s entry %q is not lowercase", name, entry)
			}
		}
	}
}

func TestNoSourceAppearsInTwoLeanings(t *testing.T) {
	seen := map[string]string{}
	for name, list := range map[string][]string{
		"left":   LeftSources,
		"right":  RightSources,
		"center": CenterSources,
	} {
		for _, src := range list {
			if prev, ok := seen[src]; ok {
				t.Errorf("source %q listed as both %s and %s", src, prev, name)
			}
			seen[src] = name
		}
	}
}

func TestExpectedMembers(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		entry string
	}{
		{"left sources", LeftSources, "msnbc"},
		{"right sources", RightSources, "breitbart"},
		{"center sources", CenterSources, "reuters"},
		{"left terms", LeftTerms, "climate crisis"},
		{"left terms", LeftTerms, "gun control"},
		{"right terms", RightTerms, "law and order"},
		{"right terms", RightTerms, "border security"},
		{"ad indicators", AdIndicators, "sponsored"},
		{"ad indicators", AdIndicators, "best price"},
		{"commerce url hints", CommerceURLHints, "shop"},
		{"reputable outlets", ReputableOutlets, "BBC News"},
		{"filler phrases", FillerPhrases, "in order to"},
	}

	for _, tt := range tests {
		found := false
		for _, entry := range tt.list {
			if entry == tt.entry {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s missing %q", tt.name, tt.entry)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"t", true},
		{"now", true},
		{"inflation", false},
		{"The", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStopWord(tt.word); got != tt.want {
			t.Errorf("IsStopWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
