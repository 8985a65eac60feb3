package summarize

import (
	"math"
	"strings"

	"github.com/ppiankov/newsprism/internal/lexicon"
)

// Similarity computes the cosine similarity of two sentences over their
// shared stop-word-filtered vocabulary. The result is in [0,1]; sentences
// with no content words have similarity 0.
func Similarity(a, b string) float64 {
	wordsA := contentWords(a)
	wordsB := contentWords(b)

	// Union vocabulary of both filtered word lists
	index := make(map[string]int, len(wordsA)+len(wordsB))
	for _, w := range wordsA {
		if _, ok := index[w]; !ok {
			index[w] = len(index)
		}
	}
	for _, w := range wordsB {
		if _, ok := index[w]; !ok {
			index[w] = len(index)
		}
	}
	if len(index) == 0 {
		return 0
	}

	vecA := make([]float64, len(index))
	vecB := make([]float64, len(index))
	for _, w := range wordsA {
		vecA[index[w]]++
	}
	for _, w := range wordsB {
		vecB[index[w]]++
	}

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range vecA {
		dot += vecA[i] * vecB[i]
		normA += vecA[i] * vecA[i]
		normB += vecB[i] * vecB[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 || math.IsNaN(sim) {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// BuildSimilarityMatrix computes pairwise similarity for all ordered pairs
// of sentences. The diagonal is fixed at 0 so self-similarity never
// contributes to a sentence's centrality score.
func BuildSimilarityMatrix(sentences []string) [][]float64 {
	n := len(sentences)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			matrix[i][j] = Similarity(sentences[i], sentences[j])
		}
	}

	return matrix
}

// contentWords splits a sentence on whitespace and drops stop words
func contentWords(sentence string) []string {
	fields := strings.Fields(sentence)
	words := fields[:0:len(fields)]
	for _, w := range fields {
		if lexicon.IsStopWord(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}
