package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ppiankov/newsprism/internal/classify"
	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/usage"
)

const defaultNewsAPIBaseURL = "https://newsapi.org/v2"

// NewsAPIProvider retrieves articles from the NewsAPI "everything"
// endpoint. Requests count against the persisted daily quota.
type NewsAPIProvider struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	classifier *classify.Classifier
	counter    usage.Counter
}

// NewNewsAPIProvider creates a NewsAPI provider. The counter may be nil,
// which disables quota tracking.
func NewNewsAPIProvider(apiKey string, pageSize int, timeout time.Duration, counter usage.Counter) *NewsAPIProvider {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &NewsAPIProvider{
		apiKey:     apiKey,
		baseURL:    defaultNewsAPIBaseURL,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
		classifier: classify.NewClassifier(),
		counter:    counter,
	}
}

// Name implements Provider
func (p *NewsAPIProvider) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Search implements Provider
func (p *NewsAPIProvider) Search(ctx context.Context, query string) ([]model.Article, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("newsapi: API key not configured")
	}
	if p.counter != nil && p.counter.Remaining(p.Name()) == 0 {
		return nil, fmt.Errorf("newsapi: daily request limit reached")
	}

	params := url.Values{}
	params.Set("q", query+adExclusionSuffix)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(p.pageSize))

	reqURL := p.baseURL + "/everything?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: create request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request: %w", err)
	}
	defer resp.Body.Close()

	if p.counter != nil {
		p.counter.Increment(p.Name())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("newsapi: read response: %w", err)
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if parsed.Status != "ok" {
		if parsed.Message != "" {
			return nil, fmt.Errorf("newsapi: %s: %s", parsed.Code, parsed.Message)
		}
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode)
	}

	articles := make([]model.Article, 0, len(parsed.Articles))
	for _, raw := range parsed.Articles {
		if raw.Title == "" || raw.Title == "[Removed]" {
			continue
		}
		articles = append(articles, model.Article{
			Title:         raw.Title,
			Link:          raw.URL,
			Source:        raw.Source.Name,
			PublishedTime: formatPublishedAt(raw.PublishedAt),
			Snippet:       raw.Description,
			Rating:        p.classifier.CalculateRating(raw.Source.Name, raw.Description),
			Bias:          p.classifier.ClassifyBias(raw.Source.Name, raw.Description),
		})
	}

	return articles, nil
}

// formatPublishedAt converts an RFC 3339 timestamp to the display
// format. Unparseable values pass through unchanged.
func formatPublishedAt(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(publishedTimeFormat)
}
