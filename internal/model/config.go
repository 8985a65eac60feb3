package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete newsprism configuration
type Config struct {
	HTTP        HTTPConfig      `yaml:"http"`
	Cache       CacheConfig     `yaml:"cache"`
	Summary     SummaryConfig   `yaml:"summary"`
	Providers   ProviderConfig  `yaml:"providers"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Enhance     EnhanceConfig   `yaml:"enhance"`
	Usage       UsageConfig     `yaml:"usage"`
	LLM         LLMConfig       `yaml:"llm"`
	Output      OutputConfig    `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
}

// CacheConfig controls provider-response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// SummaryConfig holds the extractive summarizer tuning parameters
type SummaryConfig struct {
	MaxSentences        int     `yaml:"max_sentences"`
	MaxWords            int     `yaml:"max_words"`
	NumKeywords         int     `yaml:"num_keywords"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// ProviderConfig holds retrieval provider settings
type ProviderConfig struct {
	Default     string `yaml:"default"` // newsapi, gnews, scrape
	NewsAPIKey  string `yaml:"newsapi_key"`
	GNewsAPIKey string `yaml:"gnews_key"`
	PageSize    int    `yaml:"page_size"`
}

// RateLimitConfig controls per-domain rate limiting for enhancement fetches
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// EnhanceConfig controls article-page content enhancement
type EnhanceConfig struct {
	Enabled      bool          `yaml:"enabled"`
	TopN         int           `yaml:"top_n"`
	Workers      int           `yaml:"workers"`
	SnippetLimit int           `yaml:"snippet_limit"`
	Timeout      time.Duration `yaml:"timeout"`
}

// UsageConfig controls the persisted API usage counters
type UsageConfig struct {
	File         string `yaml:"file"`
	NewsAPILimit int    `yaml:"newsapi_limit"`
	GNewsLimit   int    `yaml:"gnews_limit"`
}

// LLMConfig holds optional LLM digest settings
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	JSON    string `yaml:"json"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Newsprism/0.1 (+https://github.com/ppiankov/newsprism)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   1 * time.Hour,
		},
		Summary: SummaryConfig{
			MaxSentences:        5,
			MaxWords:            80,
			NumKeywords:         5,
			SimilarityThreshold: 0.5,
		},
		Providers: ProviderConfig{
			Default:  "newsapi",
			PageSize: 10,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1.0,
			Burst:             3,
		},
		Enhance: EnhanceConfig{
			Enabled:      true,
			TopN:         3,
			Workers:      3,
			SnippetLimit: 200,
			Timeout:      3 * time.Second,
		},
		Usage: UsageConfig{
			File:         defaultUsageFile(),
			NewsAPILimit: 100, // free tier: 100 requests per day
			GNewsLimit:   100,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 400,
		},
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".newsprism-cache"
	}
	return filepath.Join(home, ".newsprism", "cache")
}

func defaultUsageFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "api_usage.json"
	}
	return filepath.Join(home, ".newsprism", "api_usage.json")
}
