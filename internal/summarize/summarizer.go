package summarize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/newsprism/internal/lexicon"
)

// minSummarizeLen is the text length below which summarization is a no-op
const minSummarizeLen = 100

// Summarizer produces extractive summaries by ranking sentences on
// similarity-graph centrality and greedily selecting non-redundant
// sentences under a word budget. It is pure and reentrant.
type Summarizer struct {
	threshold float64 // redundancy threshold on pairwise similarity
}

// NewSummarizer creates a summarizer with the given redundancy threshold.
// A threshold <= 0 falls back to the default of 0.5.
func NewSummarizer(threshold float64) *Summarizer {
	if threshold <= 0 {
		threshold = 0.5
	}
	return &Summarizer{threshold: threshold}
}

// candidate carries a sentence together with its original position so
// final ordering never has to re-derive the index by text lookup.
type candidate struct {
	index int
	text  string
}

// Summarize extracts the most central sentences from text, up to
// maxSentences and maxWords. Texts shorter than 100 characters, or with
// no more sentences than requested, are returned unchanged.
func (s *Summarizer) Summarize(text string, maxSentences, maxWords int) string {
	if len(text) < minSummarizeLen {
		return text
	}

	original := SplitSentences(text)
	if len(original) <= maxSentences {
		return text
	}

	// Lowercased, punctuation-stripped copies are used for scoring only;
	// the original-cased sentences are what gets emitted.
	scored := make([]string, len(original))
	for i, sent := range original {
		scored[i] = strings.ToLower(stripPunctuation(sent))
	}

	matrix := BuildSimilarityMatrix(scored)

	scores := make([]float64, len(scored))
	for i, row := range matrix {
		var sum float64
		for _, v := range row {
			sum += v
		}
		scores[i] = sum * positionFactor(i, len(scored)) * lengthFactor(scored[i])
	}

	ranked := make([]int, len(scores))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}
		return ranked[a] < ranked[b]
	})

	var selected []candidate
	wordCount := 0

	for _, idx := range ranked {
		if len(selected) >= maxSentences {
			break
		}

		sentence := original[idx]
		if s.isRedundant(sentence, selected) {
			continue
		}

		n := len(strings.Fields(sentence))
		if wordCount+n > maxWords {
			// Accept a single over-budget sentence rather than return nothing
			if len(selected) == 0 {
				selected = append(selected, candidate{index: idx, text: sentence})
			}
			break
		}

		selected = append(selected, candidate{index: idx, text: sentence})
		wordCount += n
	}

	// Restore source order for readability
	sort.Slice(selected, func(a, b int) bool {
		return selected[a].index < selected[b].index
	})

	parts := make([]string, len(selected))
	for i, c := range selected {
		parts[i] = compressSentence(c.text)
	}
	return strings.Join(parts, " ")
}

// isRedundant reports whether a sentence is too similar to any already
// selected sentence.
func (s *Summarizer) isRedundant(sentence string, selected []candidate) bool {
	for _, c := range selected {
		if Similarity(sentence, c.text) > s.threshold {
			return true
		}
	}
	return false
}

// positionFactor boosts sentences in the first quarter of the text
func positionFactor(i, total int) float64 {
	if i < total/4 {
		return 1.0
	}
	return 0.8
}

// lengthFactor penalizes very short and very long sentences
func lengthFactor(sentence string) float64 {
	switch n := len(strings.Fields(sentence)); {
	case n < 5:
		return 0.7
	case n > 30:
		return 0.8
	default:
		return 1.0
	}
}

var (
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// compressSentence removes filler phrases and parenthetical spans from a
// sentence. Sentences under 10 words are left alone.
func compressSentence(sentence string) string {
	if len(strings.Fields(sentence)) < 10 {
		return sentence
	}

	for _, phrase := range lexicon.FillerPhrases {
		sentence = strings.ReplaceAll(sentence, phrase, "")
	}

	sentence = parentheticalRe.ReplaceAllString(sentence, "")
	sentence = whitespaceRe.ReplaceAllString(sentence, " ")

	return strings.TrimSpace(sentence)
}
