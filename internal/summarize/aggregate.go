package summarize

import (
	"fmt"
	"strings"

	"github.com/ppiankov/newsprism/internal/model"
)

// aggregation caps: how many articles feed the blob and how many
// headlines the fallback summary lists
const (
	blobArticleCap   = 5
	fallbackHeadline = 3
	keywordRequest   = 5
	keywordDisplay   = 3
)

// Aggregator builds a cross-article summary for a query from article
// titles and snippets.
type Aggregator struct {
	summarizer *Summarizer
}

// NewAggregator creates an aggregator over the given summarizer
func NewAggregator(s *Summarizer) *Aggregator {
	return &Aggregator{summarizer: s}
}

// SummarizeArticles produces a formatted multi-article summary for query.
// It never returns an empty string and never panics: any failure inside
// the extraction pipeline falls back to a simple headline list.
func (a *Aggregator) SummarizeArticles(articles []model.Article, query string, maxSentences, maxWords int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = a.SimpleSummary(articles, query)
		}
	}()

	blob := a.blob(articles)
	if len(blob) <= minSummarizeLen {
		return fmt.Sprintf("Not enough content to generate a meaningful summary about '%s'.", query)
	}

	summary := a.summarizer.Summarize(blob, maxSentences, maxWords)
	if strings.TrimSpace(summary) == "" {
		return a.SimpleSummary(articles, query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Key developments on '%s':\n\n", query)
	b.WriteString(summary)
	b.WriteString("\n\n")

	if keywords := ExtractKeywords(blob, keywordRequest); len(keywords) > 0 {
		shown := keywords
		if len(shown) > keywordDisplay {
			shown = shown[:keywordDisplay]
		}
		fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(shown, ", "))
	}

	return b.String()
}

// SimpleSummary lists the first few article headlines with their sources.
// It is the fallback when extraction fails or yields nothing.
func (a *Aggregator) SimpleSummary(articles []model.Article, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recent news about '%s' includes:\n\n", query)

	listed := 0
	for _, art := range articles {
		if listed >= fallbackHeadline {
			break
		}
		if art.Title == "" {
			continue
		}
		source := art.Source
		if source == "" {
			source = "Unknown Source"
		}
		fmt.Fprintf(&b, "• %s (%s)\n", art.Title, source)
		listed++
	}

	return b.String()
}

// blob concatenates the titles and snippets of the first few articles
// into a single text for extraction.
func (a *Aggregator) blob(articles []model.Article) string {
	var b strings.Builder
	for i, art := range articles {
		if i >= blobArticleCap {
			break
		}
		b.WriteString(art.Title)
		b.WriteString(". ")
		b.WriteString(art.Snippet)
		b.WriteString(" ")
	}
	return b.String()
}
