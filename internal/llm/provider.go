// Package llm generates an optional narrative digest of search results
// through a pluggable language-model provider. The extractive summary
// never depends on it; a missing or failing provider only means no
// digest in the report.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/newsprism/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Digest generates a narrative digest of the search results
	Digest(ctx context.Context, req DigestRequest) (*DigestResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// DigestRequest contains the input for digest generation
type DigestRequest struct {
	// Query is the search query the articles answer
	Query string

	// Articles are the retrieved articles, already rated and filtered
	Articles []model.Article

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// DigestResponse contains the generated digest
type DigestResponse struct {
	// Text is the digest text
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 400,
	}
}

// digestSystemPrompt keeps the model on the retrieved articles instead
// of whatever it believes about the topic.
const digestSystemPrompt = "You are a news analyst. Summarize only what the provided headlines and snippets say. Do not add facts that are not in them."

// maxPromptArticles caps how many articles feed the prompt
const maxPromptArticles = 8

// BuildPrompt constructs the default digest prompt from the query and
// the retrieved articles.
func BuildPrompt(query string, articles []model.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short news digest (3-4 sentences) answering the query %q using ONLY these articles:\n\n", query)

	for i, a := range articles {
		if i >= maxPromptArticles {
			fmt.Fprintf(&b, "... and %d more articles\n", len(articles)-maxPromptArticles)
			break
		}
		source := a.Source
		if source == "" {
			source = "unknown source"
		}
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, a.Title, source)
		if a.Snippet != "" {
			fmt.Fprintf(&b, ": %s", a.Snippet)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nMention disagreements between sources when the articles show them.")
	return b.String()
}
