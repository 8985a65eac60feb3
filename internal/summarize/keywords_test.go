package summarize

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	text := "Inflation data surprised markets. Inflation remained high while markets " +
		"wobbled. Central bankers watched the inflation numbers closely."

	got := ExtractKeywords(text, 3)
	want := []string{"inflation", "markets", "data"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsFiltersStopAndShortWords(t *testing.T) {
	text := "The am is of to it go on we at inflation inflation"

	got := ExtractKeywords(text, 10)
	want := []string{"inflation"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsCapsAtN(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 3)

	got := ExtractKeywords(text, 2)
	if len(got) != 2 {
		t.Errorf("ExtractKeywords returned %d keywords, want 2", len(got))
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords("", 5); got != nil {
		t.Errorf("ExtractKeywords(empty) = %v, want nil", got)
	}
	if got := ExtractKeywords("some words here", 0); got != nil {
		t.Errorf("ExtractKeywords(n=0) = %v, want nil", got)
	}
}
