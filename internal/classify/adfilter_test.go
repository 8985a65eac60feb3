package classify

import (
	"testing"

	"github.com/ppiankov/newsprism/internal/model"
)

func TestIsAdvertisement(t *testing.T) {
	f := NewAdFilter()

	tests := []struct {
		name    string
		article model.Article
		want    bool
	}{
		{
			name: "sponsored title",
			article: model.Article{
				Title:   "Sponsored: The gadget everyone is talking about",
				Snippet: "An honest look at this year's surprise hit.",
				Link:    "https://example.com/articles/gadget",
			},
			want: true,
		},
		{
			name: "indicator in snippet",
			article: model.Article{
				Title:   "Morning headlines",
				Snippet: "Buy now and save on the season's top picks.",
				Link:    "https://example.com/news/headlines",
			},
			want: true,
		},
		{
			name: "commerce hint in link",
			article: model.Article{
				Title:   "Ten kitchen upgrades worth considering",
				Snippet: "Our editors picked their favorites.",
				Link:    "https://example.com/shop/deal123",
			},
			want: true,
		},
		{
			name: "clean article",
			article: model.Article{
				Title:   "Parliament passes budget after marathon session",
				Snippet: "Lawmakers approved the spending plan early Friday.",
				Link:    "https://example.com/politics/budget-vote",
			},
			want: false,
		},
		{
			name: "empty link does not match hints",
			article: model.Article{
				Title:   "Quiet day on the markets",
				Snippet: "Indices closed nearly flat.",
			},
			want: false,
		},
		{
			name: "indicator matching is case insensitive",
			article: model.Article{
				Title:   "LIMITED TIME OFFER on streaming bundles",
				Snippet: "",
				Link:    "https://example.com/media/streaming",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.IsAdvertisement(tt.article)
			if got != tt.want {
				t.Errorf("IsAdvertisement(%q) = %v, want %v", tt.article.Title, got, tt.want)
			}
		})
	}
}

func TestContainsIndicator(t *testing.T) {
	f := NewAdFilter()

	if !f.ContainsIndicator("Use code SAVE10 for a discount at checkout") {
		t.Error("expected discount text to match an ad indicator")
	}
	if f.ContainsIndicator("The committee met to review the findings") {
		t.Error("expected neutral text not to match any ad indicator")
	}
}
