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

const defaultGNewsBaseURL = "https://gnews.io/api/v4"

// gnewsDefaultRating is the flat relevance rating for GNews results,
// which carry no signal worth grading on.
const gnewsDefaultRating = 3

// GNewsProvider retrieves articles from the GNews search endpoint
type GNewsProvider struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	classifier *classify.Classifier
	counter    usage.Counter
}

// NewGNewsProvider creates a GNews provider. The counter may be nil,
// which disables quota tracking.
func NewGNewsProvider(apiKey string, pageSize int, timeout time.Duration, counter usage.Counter) *GNewsProvider {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &GNewsProvider{
		apiKey:     apiKey,
		baseURL:    defaultGNewsBaseURL,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
		classifier: classify.NewClassifier(),
		counter:    counter,
	}
}

// Name implements Provider
func (p *GNewsProvider) Name() string { return "gnews" }

type gnewsResponse struct {
	Errors   []string       `json:"errors"`
	Articles []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Search implements Provider
func (p *GNewsProvider) Search(ctx context.Context, query string) ([]model.Article, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gnews: API key not configured")
	}
	if p.counter != nil && p.counter.Remaining(p.Name()) == 0 {
		return nil, fmt.Errorf("gnews: daily request limit reached")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("max", strconv.Itoa(p.pageSize))
	params.Set("apikey", p.apiKey)

	reqURL := p.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("gnews: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews: request: %w", err)
	}
	defer resp.Body.Close()

	if p.counter != nil {
		p.counter.Increment(p.Name())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("gnews: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var parsed gnewsResponse
		if json.Unmarshal(body, &parsed) == nil && len(parsed.Errors) > 0 {
			return nil, fmt.Errorf("gnews: %s", parsed.Errors[0])
		}
		return nil, fmt.Errorf("gnews: unexpected status %d", resp.StatusCode)
	}

	var parsed gnewsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("gnews: decode response: %w", err)
	}

	articles := make([]model.Article, 0, len(parsed.Articles))
	for _, raw := range parsed.Articles {
		if raw.Title == "" {
			continue
		}
		articles = append(articles, model.Article{
			Title:         raw.Title,
			Link:          raw.URL,
			Source:        raw.Source.Name,
			PublishedTime: formatPublishedAt(raw.PublishedAt),
			Snippet:       raw.Description,
			Rating:        gnewsDefaultRating,
			Bias:          p.classifier.ClassifyBias(raw.Source.Name, raw.Description),
		})
	}

	return articles, nil
}
