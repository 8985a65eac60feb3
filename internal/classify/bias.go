package classify

import (
	"strings"

	"github.com/ppiankov/newsprism/internal/lexicon"
	"github.com/ppiankov/newsprism/internal/model"
)

// Classifier maps source names and article content to bias labels and
// relevance ratings. It is pure: no I/O, no mutable state beyond the
// read-only lexicon.
type Classifier struct {
	leftSources   []string
	rightSources  []string
	centerSources []string
	leftTerms     []string
	rightTerms    []string
	reputable     map[string]bool
}

// NewClassifier creates a classifier backed by the static lexicon
func NewClassifier() *Classifier {
	reputable := make(map[string]bool, len(lexicon.ReputableOutlets))
	for _, name := range lexicon.ReputableOutlets {
		reputable[name] = true
	}
	return &Classifier{
		leftSources:   lexicon.LeftSources,
		rightSources:  lexicon.RightSources,
		centerSources: lexicon.CenterSources,
		leftTerms:     lexicon.LeftTerms,
		rightTerms:    lexicon.RightTerms,
		reputable:     reputable,
	}
}

// ClassifyBias determines the bias label for a source name and optional
// content. Source matching wins over content analysis: exact name matches
// yield "Mostly", partial matches yield "Slightly" (center never gets
// "Slightly"). With no source match, charged-term counts over the content
// decide, with a margin of 3 separating "Mostly" from "Slightly".
func (c *Classifier) ClassifyBias(sourceName, content string) model.BiasLabel {
	if sourceName == "" && content == "" {
		return model.BiasNotApplicable
	}

	if sourceName != "" {
		src := strings.ToLower(sourceName)

		for _, s := range c.leftSources {
			if s == src {
				return model.BiasMostlyLeft
			}
		}
		for _, s := range c.rightSources {
			if s == src {
				return model.BiasMostlyRight
			}
		}
		for _, s := range c.centerSources {
			if s == src {
				return model.BiasMostlyCentral
			}
		}

		for _, s := range c.leftSources {
			if strings.Contains(src, s) || strings.Contains(s, src) {
				return model.BiasSlightlyLeft
			}
		}
		for _, s := range c.rightSources {
			if strings.Contains(src, s) || strings.Contains(s, src) {
				return model.BiasSlightlyRight
			}
		}
		for _, s := range c.centerSources {
			if strings.Contains(src, s) || strings.Contains(s, src) {
				return model.BiasMostlyCentral
			}
		}
	}

	if content != "" {
		text := strings.ToLower(content)

		// Presence counts, not occurrence frequency
		left := 0
		for _, term := range c.leftTerms {
			if strings.Contains(text, term) {
				left++
			}
		}
		right := 0
		for _, term := range c.rightTerms {
			if strings.Contains(text, term) {
				right++
			}
		}

		switch {
		case left > right:
			if left >= right+3 {
				return model.BiasMostlyLeft
			}
			return model.BiasSlightlyLeft
		case right > left:
			if right >= left+3 {
				return model.BiasMostlyRight
			}
			return model.BiasSlightlyRight
		case left > 0:
			return model.BiasMostlyCentral
		}
	}

	return model.BiasNotApplicable
}

// CalculateRating computes the 1-5 relevance rating for an article:
// base 3, adjusted by description length and a reputable-outlet boost.
// The result is always clamped to [1,5].
func (c *Classifier) CalculateRating(sourceName, description string) int {
	rating := 3

	if description != "" {
		switch n := len(description); {
		case n > 200:
			rating++
		case n < 50:
			rating--
		}
	}

	if c.reputable[sourceName] {
		rating++
	}

	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return rating
}
