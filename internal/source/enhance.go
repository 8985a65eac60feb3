package source

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/ppiankov/newsprism/internal/classify"
	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/worker"
)

// RobotsPolicy decides whether an article page may be fetched
type RobotsPolicy interface {
	CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error)
}

// EnhanceResult is the outcome of enhancing a single article
type EnhanceResult struct {
	Article model.Article
	// Fallback marks articles whose page could not be fetched or parsed;
	// the original snippet is kept untouched.
	Fallback bool
	// Dropped marks articles whose page content turned out to be
	// promotional. Dropped articles are removed, not annotated.
	Dropped bool
}

// Enhancer fetches article pages for the top-rated results and attaches
// a content excerpt, re-checking each page for promotional content and
// re-classifying bias from what it actually says.
type Enhancer struct {
	fetcher      *Fetcher
	robots       RobotsPolicy
	limiter      *worker.Limiter
	adFilter     *classify.AdFilter
	classifier   *classify.Classifier
	topN         int
	workers      int
	snippetLimit int
	timeout      time.Duration
}

// NewEnhancer creates an enhancer. robots may be nil to skip robots.txt
// checks (used in tests against local servers).
func NewEnhancer(fetcher *Fetcher, robots RobotsPolicy, limiter *worker.Limiter, cfg model.EnhanceConfig) *Enhancer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Enhancer{
		fetcher:      fetcher,
		robots:       robots,
		limiter:      limiter,
		adFilter:     classify.NewAdFilter(),
		classifier:   classify.NewClassifier(),
		topN:         cfg.TopN,
		workers:      workers,
		snippetLimit: cfg.SnippetLimit,
		timeout:      cfg.Timeout,
	}
}

// EnhanceTop enhances the first topN articles concurrently and returns
// the full slice with dropped articles removed. Input order is
// preserved; articles past topN pass through untouched.
func (e *Enhancer) EnhanceTop(ctx context.Context, articles []model.Article) []model.Article {
	n := e.topN
	if n > len(articles) {
		n = len(articles)
	}
	if n <= 0 {
		return articles
	}

	results := make([]EnhanceResult, n)

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx] = e.Enhance(ctx, articles[idx])
		}(i)
	}
	wg.Wait()

	out := make([]model.Article, 0, len(articles))
	for _, r := range results {
		if r.Dropped {
			continue
		}
		out = append(out, r.Article)
	}
	out = append(out, articles[n:]...)
	return out
}

// Enhance fetches one article's page and attaches an excerpt. Any
// failure along the way falls back to the article as retrieved.
func (e *Enhancer) Enhance(ctx context.Context, a model.Article) EnhanceResult {
	if a.Link == "" {
		return EnhanceResult{Article: a, Fallback: true}
	}

	crawlDelay := time.Duration(0)
	if e.robots != nil {
		allowed, delay, err := e.robots.CanFetch(ctx, a.Link)
		if err != nil || !allowed {
			return EnhanceResult{Article: a, Fallback: true}
		}
		crawlDelay = delay
	}

	if e.limiter != nil {
		if err := e.limiter.WaitWithDelay(ctx, a.Link, crawlDelay); err != nil {
			return EnhanceResult{Article: a, Fallback: true}
		}
	}

	fetchCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	result, err := e.fetcher.FetchWithRetry(fetchCtx, a.Link)
	if err != nil {
		return EnhanceResult{Article: a, Fallback: true}
	}

	content := extractArticleContent(result.HTML)
	if content == "" {
		return EnhanceResult{Article: a, Fallback: true}
	}

	// The search result looked clean but the page itself may not be
	if e.adFilter.ContainsIndicator(content) {
		return EnhanceResult{Article: a, Dropped: true}
	}

	a.EnhancedContent = excerpt(content, e.snippetLimit)

	// Content analysis only fills in labels the source name could not
	if a.Bias == "" || a.Bias == model.BiasNotApplicable {
		if label := e.classifier.ClassifyBias("", content); label != model.BiasNotApplicable {
			a.Bias = label
			a.BiasFromContent = true
		}
	}

	return EnhanceResult{Article: a}
}

// maxContentParagraphs caps how much of the page body feeds the excerpt
// and content-based bias analysis.
const maxContentParagraphs = 5

// extractArticleContent pulls the lead paragraphs out of an article
// page: the <article> element when present, otherwise the first div
// that looks like a content container.
func extractArticleContent(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	container := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "article")
	})
	if container == nil {
		container = findFirst(doc, func(n *html.Node) bool {
			if !isElement(n, "div") {
				return false
			}
			class := strings.ToLower(attrVal(n, "class"))
			return strings.Contains(class, "content") || strings.Contains(class, "article")
		})
	}
	if container == nil {
		return ""
	}

	paragraphs := findAll(container, func(n *html.Node) bool {
		return isElement(n, "p")
	})

	var parts []string
	for _, p := range paragraphs {
		if len(parts) >= maxContentParagraphs {
			break
		}
		if text := textContent(p); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// excerpt truncates content to limit runes with a trailing ellipsis
func excerpt(content string, limit int) string {
	if limit <= 0 {
		return content
	}
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
