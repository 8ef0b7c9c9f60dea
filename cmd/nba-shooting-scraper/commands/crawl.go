package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-shooting-scraper/internal/crawler"
	"github.com/myusername/nba-shooting-scraper/internal/store"
	"github.com/myusername/nba-shooting-scraper/pkg/scraper"
)

// defaultURLTemplate points at the team shooting totals page; the {season}
// token is substituted per crawled season.
const defaultURLTemplate = "http://stats.nba.com/teams/shooting/#!?sort=5-9%20ft.%20FG%20PCT&%5C%20dir=1&Season={season}&SeasonType=Regular%20Season&PerMode=Totals"

// shootingColumns are the value columns of the stat table in page order:
// made/attempted/percentage triplets per shot-distance bucket.
var shootingColumns = []string{
	"<5 FGM", "<5 FGA", "<5 FG%",
	"5-9 FGM", "5-9 FGA", "5-9 FG%",
	"10-14 FGM", "10-14 FGA", "10-14 FG%",
	"15-19 FGM", "15-19 FGA", "15-19 FG%",
	"20-24 FGM", "20-24 FGA", "20-24 FG%",
	"25-29 FGM", "25-29 FGA", "25-29 FG%",
}

var (
	startYear   int
	endYear     int
	urlTemplate string
	retryPasses int
	noSeasonCol bool
	timeout     time.Duration
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Fetch the team shooting totals for every season in the range and save them to sqlite.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		cfg := crawler.Config{
			URLTemplate:   urlTemplate,
			StartYear:     startYear,
			EndYear:       endYear,
			Columns:       shootingColumns,
			IncludeSeason: !noSeasonCol,
			RetryPasses:   retryPasses,
		}
		client := scraper.NewClient(timeout)

		result, err := crawler.New(cfg, client, db).Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("saved %d season(s)\n", len(result.Saved))
		if len(result.Failed) > 0 {
			fmt.Printf("failed %d season(s):\n", len(result.Failed))
			for _, f := range result.Failed {
				fmt.Printf("  %s on %s: %v\n", f.Season, f.URL, f.Err)
			}
		}
		return nil
	},
}

func init() {
	crawlCmd.Flags().IntVar(&startYear, "start", 1997, "first season start year (inclusive)")
	crawlCmd.Flags().IntVar(&endYear, "end", 2017, "last season start year (exclusive)")
	crawlCmd.Flags().StringVar(&urlTemplate, "url", defaultURLTemplate, "page URL template with a {season} placeholder")
	crawlCmd.Flags().IntVar(&retryPasses, "retries", 1, "extra passes over failed seasons")
	crawlCmd.Flags().BoolVar(&noSeasonCol, "no-season-column", false, "omit the leading Season column")
	crawlCmd.Flags().DurationVar(&timeout, "timeout", scraper.DefaultTimeout, "per-page fetch timeout")

	rootCmd.AddCommand(crawlCmd)
}
