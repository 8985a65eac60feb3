package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/ppiankov/newsprism/internal/classify"
	"github.com/ppiankov/newsprism/internal/model"
)

const (
	defaultYahooBaseURL = "https://news.search.yahoo.com"
	defaultBingBaseURL  = "https://www.bing.com"
)

// ScrapeProvider retrieves articles by scraping Yahoo News search
// results, falling back to Bing News when Yahoo yields nothing. It
// needs no API key and counts against no quota.
type ScrapeProvider struct {
	fetcher      *Fetcher
	classifier   *classify.Classifier
	yahooBaseURL string
	bingBaseURL  string
	pageSize     int
}

// NewScrapeProvider creates a scraping provider over the given fetcher
func NewScrapeProvider(fetcher *Fetcher, pageSize int) *ScrapeProvider {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ScrapeProvider{
		fetcher:      fetcher,
		classifier:   classify.NewClassifier(),
		yahooBaseURL: defaultYahooBaseURL,
		bingBaseURL:  defaultBingBaseURL,
		pageSize:     pageSize,
	}
}

// Name implements Provider
func (p *ScrapeProvider) Name() string { return "scrape" }

// Search implements Provider
func (p *ScrapeProvider) Search(ctx context.Context, query string) ([]model.Article, error) {
	articles, yahooErr := p.searchYahoo(ctx, query)
	if yahooErr == nil && len(articles) > 0 {
		return articles, nil
	}

	articles, bingErr := p.searchBing(ctx, query)
	if bingErr != nil {
		if yahooErr != nil {
			return nil, fmt.Errorf("scrape: yahoo: %v; bing: %w", yahooErr, bingErr)
		}
		return nil, fmt.Errorf("scrape: bing: %w", bingErr)
	}
	return articles, nil
}

func (p *ScrapeProvider) searchYahoo(ctx context.Context, query string) ([]model.Article, error) {
	searchURL := p.yahooBaseURL + "/search?p=" + url.QueryEscape(query)
	result, err := p.fetcher.FetchWithRetry(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	cards := findAll(doc, func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, "NewsArticle")
	})

	var articles []model.Article
	for _, card := range cards {
		if len(articles) >= p.pageSize {
			break
		}
		if a, ok := p.parseYahooCard(card, query); ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func (p *ScrapeProvider) parseYahooCard(card *html.Node, query string) (model.Article, bool) {
	title, link := p.titleAndLink(card, "h4", "s-title")
	if title == "" {
		return model.Article{}, false
	}

	source := ""
	if n := findFirst(card, func(n *html.Node) bool {
		return isElement(n, "span") && hasClass(n, "s-source")
	}); n != nil {
		source = textContent(n)
	}

	snippet := ""
	if n := findFirst(card, func(n *html.Node) bool {
		return isElement(n, "p") && hasClass(n, "s-desc")
	}); n != nil {
		snippet = textContent(n)
	}

	return model.Article{
		Title:   title,
		Link:    link,
		Source:  source,
		Snippet: snippet,
		Rating:  p.scrapeRating(title, snippet, query),
		Bias:    p.classifier.ClassifyBias(source, snippet),
	}, true
}

func (p *ScrapeProvider) searchBing(ctx context.Context, query string) ([]model.Article, error) {
	searchURL := p.bingBaseURL + "/news/search?q=" + url.QueryEscape(query)
	result, err := p.fetcher.FetchWithRetry(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	cards := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "news-card")
	})

	var articles []model.Article
	for _, card := range cards {
		if len(articles) >= p.pageSize {
			break
		}
		if a, ok := p.parseBingCard(card, query); ok {
			articles = append(articles, a)
		}
	}
	return articles, nil
}

func (p *ScrapeProvider) parseBingCard(card *html.Node, query string) (model.Article, bool) {
	titleNode := findFirst(card, func(n *html.Node) bool {
		return isElement(n, "a") && hasClass(n, "title")
	})
	if titleNode == nil {
		return model.Article{}, false
	}
	title := textContent(titleNode)
	if title == "" {
		return model.Article{}, false
	}
	link := attrVal(titleNode, "href")

	source := ""
	if n := findFirst(card, func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, "source")
	}); n != nil {
		source = textContent(n)
	}

	snippet := ""
	if n := findFirst(card, func(n *html.Node) bool {
		return isElement(n, "div") && hasClass(n, "snippet")
	}); n != nil {
		snippet = textContent(n)
	}

	return model.Article{
		Title:   title,
		Link:    link,
		Source:  source,
		Snippet: snippet,
		Rating:  p.scrapeRating(title, snippet, query),
		Bias:    p.classifier.ClassifyBias(source, snippet),
	}, true
}

// titleAndLink extracts the headline text and href from a result card.
// The anchor inside the heading wins; a bare heading still counts with
// an empty link.
func (p *ScrapeProvider) titleAndLink(card *html.Node, headingTag, headingClass string) (string, string) {
	heading := findFirst(card, func(n *html.Node) bool {
		return isElement(n, headingTag) && hasClass(n, headingClass)
	})
	if heading == nil {
		heading = findFirst(card, func(n *html.Node) bool {
			return isElement(n, headingTag)
		})
	}
	if heading == nil {
		return "", ""
	}

	if anchor := findFirst(heading, func(n *html.Node) bool {
		return isElement(n, "a")
	}); anchor != nil {
		return textContent(anchor), attrVal(anchor, "href")
	}
	return textContent(heading), ""
}

// scrapeRating grades scraped results: base 3, +1 for a substantial
// snippet, +1 when the query appears in the title.
func (p *ScrapeProvider) scrapeRating(title, snippet, query string) int {
	rating := 3
	if len(snippet) > 150 {
		rating++
	}
	if strings.Contains(strings.ToLower(title), strings.ToLower(query)) {
		rating++
	}
	if rating > 5 {
		rating = 5
	}
	return rating
}
