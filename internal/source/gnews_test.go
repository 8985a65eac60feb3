package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/usage"
)

func TestGNewsSearch(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"totalArticles": 2,
			"articles": [
				{
					"title": "Fox News covers the rate hike",
					"description": "Commentary on the decision.",
					"url": "https://example.com/fox",
					"publishedAt": "2026-08-27T10:00:00Z",
					"source": {"name": "Fox News", "url": "https://foxnews.com"}
				},
				{
					"title": "",
					"description": "headline missing",
					"url": "https://example.com/empty",
					"publishedAt": "2026-08-27T11:00:00Z",
					"source": {"name": "Somewhere", "url": ""}
				}
			]
		}`)
	}))
	defer server.Close()

	counter := usage.NewFileCounter(filepath.Join(t.TempDir(), "usage.json"), map[string]int{"gnews": 100})
	p := NewGNewsProvider("gnews-key", 10, 5*time.Second, counter)
	p.baseURL = server.URL

	articles, err := p.Search(context.Background(), "rate hike")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotQuery != "rate hike" {
		t.Errorf("query = %q, want rate hike", gotQuery)
	}
	if gotKey != "gnews-key" {
		t.Errorf("apikey = %q, want gnews-key", gotKey)
	}

	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 (untitled entry skipped)", len(articles))
	}

	a := articles[0]
	if a.Rating != gnewsDefaultRating {
		t.Errorf("rating = %d, want fixed %d", a.Rating, gnewsDefaultRating)
	}
	if a.Bias != model.BiasMostlyRight {
		t.Errorf("bias = %q, want %q", a.Bias, model.BiasMostlyRight)
	}
	if a.PublishedTime != "Aug 27, 2026" {
		t.Errorf("published time = %q, want Aug 27, 2026", a.PublishedTime)
	}

	if got := counter.Get("gnews"); got != 1 {
		t.Errorf("usage count = %d, want 1", got)
	}
}

func TestGNewsSearchErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"errors": ["Your API key is invalid."]}`)
	}))
	defer server.Close()

	p := NewGNewsProvider("bad-key", 10, 5*time.Second, nil)
	p.baseURL = server.URL

	_, err := p.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error from API error response")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("error %q missing API message", err)
	}
}

func TestGNewsSearchQuotaExhausted(t *testing.T) {
	counter := usage.NewFileCounter(filepath.Join(t.TempDir(), "usage.json"), map[string]int{"gnews": 0})

	p := NewGNewsProvider("gnews-key", 10, 5*time.Second, counter)

	_, err := p.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected quota error, got nil")
	}
}
