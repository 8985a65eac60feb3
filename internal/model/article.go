package model

// BiasLabel classifies the political leaning of a source or article.
// The set is closed: classification always yields one of these values.
type BiasLabel string

const (
	BiasMostlyLeft    BiasLabel = "Mostly left leaning"
	BiasSlightlyLeft  BiasLabel = "Slightly left leaning"
	BiasMostlyRight   BiasLabel = "Mostly right leaning"
	BiasSlightlyRight BiasLabel = "Slightly right leaning"
	BiasMostlyCentral BiasLabel = "Mostly central"
	BiasNotApplicable BiasLabel = "Not applicable"
)

// Article represents a single retrieved news article.
// Providers create them; the classifier and ad filter annotate them;
// the summarizer consumes them read-only.
type Article struct {
	Title         string    `json:"title"`
	Link          string    `json:"link"`
	Source        string    `json:"source"`
	PublishedTime string    `json:"published_time,omitempty"` // human-formatted, may be empty
	Snippet       string    `json:"snippet,omitempty"`
	Rating        int       `json:"rating"` // relevance rating, always in [1,5]
	Bias          BiasLabel `json:"bias"`

	// EnhancedContent is a short excerpt fetched from the article page,
	// truncated to the configured limit with a trailing ellipsis.
	EnhancedContent string `json:"enhanced_content,omitempty"`

	// BiasFromContent marks labels derived from page content rather than
	// the source name (the label set itself stays closed).
	BiasFromContent bool `json:"bias_from_content,omitempty"`
}
