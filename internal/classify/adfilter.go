package classify

import (
	"strings"

	"github.com/ppiankov/newsprism/internal/lexicon"
	"github.com/ppiankov/newsprism/internal/model"
)

// AdFilter detects promotional content among retrieved articles
type AdFilter struct {
	indicators []string
	urlHints   []string
}

// NewAdFilter creates an ad filter backed by the static lexicon
func NewAdFilter() *AdFilter {
	return &AdFilter{
		indicators: lexicon.AdIndicators,
		urlHints:   lexicon.CommerceURLHints,
	}
}

// IsAdvertisement reports whether an article looks like promotional content.
// Either an ad-indicator phrase in the title/snippet/source text or a
// commerce hint in the link URL is sufficient on its own.
func (f *AdFilter) IsAdvertisement(a model.Article) bool {
	text := strings.ToLower(a.Title + " " + a.Snippet + " " + a.Source)
	if f.ContainsIndicator(text) {
		return true
	}

	link := strings.ToLower(a.Link)
	if link != "" {
		for _, hint := range f.urlHints {
			if strings.Contains(link, hint) {
				return true
			}
		}
	}

	return false
}

// ContainsIndicator reports whether any ad-indicator phrase appears in the
// given text. Used to re-check full page content during enhancement.
func (f *AdFilter) ContainsIndicator(text string) bool {
	text = strings.ToLower(text)
	for _, ind := range f.indicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}
