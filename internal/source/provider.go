// Package source retrieves news articles from API providers and web
// scraping, and enhances them with content fetched from article pages.
package source

import (
	"context"

	"github.com/ppiankov/newsprism/internal/model"
)

// Provider retrieves articles matching a query. Implementations annotate
// each article with its rating and source-level bias label before
// returning it.
type Provider interface {
	// Name returns the provider identifier used for caching and quotas
	Name() string
	// Search retrieves articles for the query
	Search(ctx context.Context, query string) ([]model.Article, error)
}

// adExclusionSuffix is appended to API queries to push obviously
// promotional results out of the result set before local filtering.
const adExclusionSuffix = " NOT advertisement NOT sponsored NOT promotion"

// publishedTimeFormat is the human-readable date attached to articles
const publishedTimeFormat = "Jan 02, 2006"
