// Package pipeline orchestrates a search request end to end: provider
// retrieval, caching, ad filtering, relevance sorting, enhancement,
// summarization, and the optional LLM digest.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/ppiankov/newsprism/internal/cache"
	"github.com/ppiankov/newsprism/internal/classify"
	"github.com/ppiankov/newsprism/internal/llm"
	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/source"
	"github.com/ppiankov/newsprism/internal/summarize"
	"github.com/ppiankov/newsprism/internal/usage"
	"github.com/ppiankov/newsprism/internal/util"
	"github.com/ppiankov/newsprism/internal/worker"
)

// Pipeline runs searches through a provider and assembles reports
type Pipeline struct {
	provider   source.Provider
	enhancer   *source.Enhancer
	adFilter   *classify.AdFilter
	summarizer *summarize.Summarizer
	aggregator *summarize.Aggregator
	cache      cache.Cache
	llm        llm.Provider // nil when digest generation is disabled
	config     *model.Config
}

// NewPipeline creates a pipeline for the configured provider
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	counter := usage.NewFileCounter(cfg.Usage.File, map[string]int{
		"newsapi": cfg.Usage.NewsAPILimit,
		"gnews":   cfg.Usage.GNewsLimit,
	})

	fetcher := source.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes)

	provider, err := buildProvider(cfg, fetcher, counter)
	if err != nil {
		return nil, err
	}

	var enhancer *source.Enhancer
	if cfg.Enhance.Enabled {
		robots := util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout)
		limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		enhancer = source.NewEnhancer(fetcher, robots, limiter, cfg.Enhance)
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var llmProvider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			llmProvider = p
		}
	}

	summarizer := summarize.NewSummarizer(cfg.Summary.SimilarityThreshold)

	return &Pipeline{
		provider:   provider,
		enhancer:   enhancer,
		adFilter:   classify.NewAdFilter(),
		summarizer: summarizer,
		aggregator: summarize.NewAggregator(summarizer),
		cache:      resultCache,
		llm:        llmProvider,
		config:     cfg,
	}, nil
}

func buildProvider(cfg *model.Config, fetcher *source.Fetcher, counter usage.Counter) (source.Provider, error) {
	switch cfg.Providers.Default {
	case "newsapi":
		return source.NewNewsAPIProvider(cfg.Providers.NewsAPIKey, cfg.Providers.PageSize, cfg.HTTP.Timeout, counter), nil
	case "gnews":
		return source.NewGNewsProvider(cfg.Providers.GNewsAPIKey, cfg.Providers.PageSize, cfg.HTTP.Timeout, counter), nil
	case "scrape":
		return source.NewScrapeProvider(fetcher, cfg.Providers.PageSize), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: newsapi, gnews, scrape)", cfg.Providers.Default)
	}
}

// Search runs one query through the full pipeline
func (p *Pipeline) Search(ctx context.Context, query string) (*model.SearchReport, error) {
	articles, err := p.retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	// Drop promotional results before any ranking or enhancement
	kept := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		if p.adFilter.IsAdvertisement(a) {
			continue
		}
		kept = append(kept, a)
	}
	filteredAds := len(articles) - len(kept)

	// Rating is the sole sort key; equal ratings keep provider order
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].Rating > kept[b].Rating
	})

	if p.enhancer != nil {
		before := len(kept)
		kept = p.enhancer.EnhanceTop(ctx, kept)
		filteredAds += before - len(kept)
	}

	report := &model.SearchReport{
		Query:       query,
		Provider:    p.provider.Name(),
		FetchedAt:   time.Now().UTC(),
		Articles:    kept,
		Summary:     p.aggregator.SummarizeArticles(kept, query, p.config.Summary.MaxSentences, p.config.Summary.MaxWords),
		FilteredAds: filteredAds,
	}

	if blob := articleBlob(kept); blob != "" {
		report.Keywords = summarize.ExtractKeywords(blob, p.config.Summary.NumKeywords)
	}

	// The digest comes last and never affects the extractive summary
	if p.llm != nil {
		resp, err := p.llm.Digest(ctx, llm.DigestRequest{Query: query, Articles: kept})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM digest generation failed: %v\n", err)
		} else {
			report.Digest = &model.Digest{
				Provider:   p.llm.Name(),
				Model:      resp.Model,
				Text:       resp.Text,
				TokensUsed: resp.TokensUsed,
			}
		}
	}

	return report, nil
}

// retrieve returns articles for the query, serving from cache when
// possible. Corrupt cache entries are dropped and refetched.
func (p *Pipeline) retrieve(ctx context.Context, query string) ([]model.Article, error) {
	key := cache.CacheKey(p.provider.Name(), query)

	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var articles []model.Article
			if err := json.Unmarshal(data, &articles); err == nil {
				return articles, nil
			}
			_ = p.cache.Delete(key)
		}
	}

	articles, err := p.provider.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if p.cache != nil {
		if data, err := json.Marshal(articles); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return articles, nil
}

func articleBlob(articles []model.Article) string {
	var out string
	for i, a := range articles {
		if i >= 5 {
			break
		}
		out += a.Title + ". " + a.Snippet + " "
	}
	return out
}
