package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/newsprism/internal/model"
)

// Renderer writes search reports as human-readable text or JSON
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderText writes the report in the interactive console format
func (r *Renderer) RenderText(w io.Writer, report *model.SearchReport) error {
	fmt.Fprintf(w, "Results for %q via %s (%s)\n", report.Query, report.Provider, report.FetchedAt.Format("Jan 02, 2006 15:04 UTC"))
	if report.FilteredAds > 0 {
		fmt.Fprintf(w, "Filtered %d promotional result(s)\n", report.FilteredAds)
	}
	fmt.Fprintln(w)

	for i, a := range report.Articles {
		fmt.Fprintf(w, "%d. %s\n", i+1, a.Title)

		meta := []string{ratingBar(a.Rating), biasDisplay(a)}
		if a.Source != "" {
			meta = append(meta, a.Source)
		}
		if a.PublishedTime != "" {
			meta = append(meta, a.PublishedTime)
		}
		fmt.Fprintf(w, "   %s\n", strings.Join(meta, " | "))

		if a.Snippet != "" {
			fmt.Fprintf(w, "   %s\n", a.Snippet)
		}
		if a.EnhancedContent != "" {
			fmt.Fprintf(w, "   > %s\n", a.EnhancedContent)
		}
		if a.Link != "" {
			fmt.Fprintf(w, "   %s\n", a.Link)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, report.Summary)

	if report.Digest != nil {
		fmt.Fprintf(w, "\nDigest (%s, %s):\n%s\n", report.Digest.Provider, report.Digest.Model, report.Digest.Text)
		if r.verbose && report.Digest.TokensUsed > 0 {
			fmt.Fprintf(w, "(%d tokens)\n", report.Digest.TokensUsed)
		}
	}

	return nil
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(w io.Writer, report *model.SearchReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// ratingBar renders a 1-5 rating as filled and empty stars
func ratingBar(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// biasDisplay renders the bias label, marking labels that came from
// page content rather than the source name.
func biasDisplay(a model.Article) string {
	if a.BiasFromContent {
		return string(a.Bias) + " (content analysis)"
	}
	return string(a.Bias)
}
