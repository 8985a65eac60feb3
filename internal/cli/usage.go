package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/newsprism/internal/model"
	"github.com/ppiankov/newsprism/internal/usage"
)

// usageCmd reports today's API consumption against the daily quotas
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's API usage against daily limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()
		counter := usage.NewFileCounter(cfg.Usage.File, map[string]int{
			"newsapi": cfg.Usage.NewsAPILimit,
			"gnews":   cfg.Usage.GNewsLimit,
		})

		for _, name := range []string{"newsapi", "gnews"} {
			limit, ok := counter.Limit(name)
			if !ok {
				continue
			}
			used := counter.Get(name)
			fmt.Printf("%-8s %d/%d (%d left)\n", name, used, limit, counter.Remaining(name))
		}
		fmt.Println("scrape   unlimited (no API key)")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
