package summarize

import (
	"sort"
	"strings"

	"github.com/ppiankov/newsprism/internal/lexicon"
)

// ExtractKeywords returns the n most frequent content words of text in
// frequency order. Ties keep first-seen order. Stop words and words of
// two characters or fewer are ignored.
func ExtractKeywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	words := strings.Fields(strings.ToLower(stripPunctuation(text)))

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if len(w) <= 2 || lexicon.IsStopWord(w) {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
