package model

import "time"

// SearchReport is the complete result of one search request
type SearchReport struct {
	Query       string    `json:"query"`
	Provider    string    `json:"provider"`
	FetchedAt   time.Time `json:"fetched_at"`
	Articles    []Article `json:"articles"` // relevance-sorted, ads removed
	Summary     string    `json:"summary"`  // extractive multi-article summary
	Keywords    []string  `json:"keywords,omitempty"`
	FilteredAds int       `json:"filtered_ads"`

	// Digest is an optional LLM-generated digest. It is produced after the
	// extractive summary and never replaces it.
	Digest *Digest `json:"digest,omitempty"`
}

// Digest contains an optional LLM digest of the search results
type Digest struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Text       string `json:"text"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}
