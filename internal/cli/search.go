package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/pipeline"
)

var (
	providerName string
	pageSize     int
	asJSON       bool
	jsonFile     string
	timeout      time.Duration
	userAgent    string
	noCache      bool
	noEnhance    bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news and build a rated, summarized report",
	Long: `Search retrieves articles for a query, then:
- Drops promotional results (re-checked against fetched page content)
- Rates each article's relevance on a 1-5 scale
- Labels each source's political leaning
- Enhances the top results with excerpts from the article pages
- Builds an extractive summary across the coverage

Example:
  newsprism search "climate summit"
  newsprism search "rate decision" --provider scrape --no-cache
  newsprism search "election" --llm ollama --llm-model llama3.1:8b
  newsprism search "trade talks" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&providerName, "provider", "newsapi", "article provider (newsapi, gnews, scrape)")
	searchCmd.Flags().IntVar(&pageSize, "page-size", 10, "max articles to retrieve")
	searchCmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON on stdout")
	searchCmd.Flags().StringVar(&jsonFile, "json-file", "", "also write the JSON report to a file")

	searchCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall search timeout")
	searchCmd.Flags().StringVar(&userAgent, "ua", "Newsprism/0.1 (+https://github.com/ppiankov/newsprism)", "HTTP User-Agent")
	searchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching (force fresh retrieval)")
	searchCmd.Flags().BoolVar(&noEnhance, "no-enhance", false, "skip fetching article pages for excerpts")

	searchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM digest generation")
	searchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	searchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildSearchConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Searching: %s\n", query)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", cfg.Providers.Default)
		fmt.Fprintf(os.Stderr, "Cache: %v, Enhance: %v\n", cfg.Cache.Enabled, cfg.Enhance.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	report, err := p.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Retrieved %d articles (%d promotional filtered)\n", len(report.Articles), report.FilteredAds)
		if report.Digest != nil {
			fmt.Fprintf(os.Stderr, "✓ Generated digest using %s/%s\n", report.Digest.Provider, report.Digest.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(verbose)
	if cfg.Output.JSON != "" {
		if err := writeJSONReport(renderer, cfg.Output.JSON, report); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON report to %s\n", cfg.Output.JSON)
		}
	}
	if asJSON {
		return renderer.RenderJSON(os.Stdout, report)
	}
	return renderer.RenderText(os.Stdout, report)
}

func writeJSONReport(renderer *pipeline.Renderer, path string, report *model.SearchReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := renderer.RenderJSON(f, report); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

// buildSearchConfig assembles the effective configuration from defaults,
// flags, and environment variables.
func buildSearchConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Providers.Default = providerName
	cfg.Providers.PageSize = pageSize
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.Cache.Enabled = !noCache
	cfg.Enhance.Enabled = !noEnhance
	cfg.Output.Verbose = verbose
	cfg.Output.JSON = jsonFile

	switch providerName {
	case "newsapi":
		cfg.Providers.NewsAPIKey = os.Getenv("NEWSAPI_KEY")
		if cfg.Providers.NewsAPIKey == "" {
			return nil, fmt.Errorf("NEWSAPI_KEY environment variable not set (or use --provider scrape)")
		}
	case "gnews":
		cfg.Providers.GNewsAPIKey = os.Getenv("GNEWS_API_KEY")
		if cfg.Providers.GNewsAPIKey == "" {
			return nil, fmt.Errorf("GNEWS_API_KEY environment variable not set (or use --provider scrape)")
		}
	case "scrape":
		// No key needed
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: newsapi, gnews, scrape)", providerName)
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
