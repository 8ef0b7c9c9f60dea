// Package crawler runs the fetch -> extract -> shape -> persist pipeline over a season range
package crawler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myusername/nba-shooting-scraper/pkg/links"
	"github.com/myusername/nba-shooting-scraper/pkg/models"
	"github.com/myusername/nba-shooting-scraper/pkg/parser"
	"github.com/myusername/nba-shooting-scraper/pkg/scraper"
)

// destSuffix is appended to the season label to name the storage destination.
const destSuffix = "_totals"

// Sink persists one shaped season table, fully replacing any prior contents
// of the destination.
type Sink interface {
	Save(ctx context.Context, table *models.Table, dest string) error
}

// Config holds everything a run needs. There is no other state: the same
// Config always crawls the same seasons into the same destinations.
type Config struct {
	// URLTemplate must contain exactly one %s placeholder for the season label.
	URLTemplate string
	// StartYear..EndYear (exclusive) selects the seasons to crawl.
	StartYear int
	EndYear   int
	// Columns names the stat table's value columns, in page order.
	Columns []string
	// IncludeSeason adds a leading constant Season column ahead of Team.
	IncludeSeason bool
	// RetryPasses is the number of extra passes over failed seasons.
	RetryPasses int
}

// Failure records a season that could not be persisted, with the URL that was
// requested for it.
type Failure struct {
	Season string
	URL    string
	Err    error
}

// Result reports the outcome of a run.
type Result struct {
	// Saved lists the destinations written, in completion order.
	Saved []string
	// Failed lists the seasons that still failed after all retry passes.
	Failed []Failure
}

// Crawler wires the pipeline stages together.
type Crawler struct {
	cfg     Config
	fetcher scraper.Fetcher
	sink    Sink
}

// New creates a Crawler for the given config, fetcher and sink.
func New(cfg Config, fetcher scraper.Fetcher, sink Sink) *Crawler {
	return &Crawler{cfg: cfg, fetcher: fetcher, sink: sink}
}

// Run crawls every season in the configured range, then retries the failed
// ones. A season failing at any pipeline step never aborts the batch; the
// error is recorded and the next season proceeds. Only link generation is
// fatal. Failures left after the retry passes are reported in the Result.
func (c *Crawler) Run(ctx context.Context) (Result, error) {
	seasons, err := links.Generate(c.cfg.URLTemplate, c.cfg.StartYear, c.cfg.EndYear)
	if err != nil {
		return Result{}, fmt.Errorf("error generating links: %w", err)
	}

	var result Result
	failed := c.runPass(ctx, seasons, &result, 0)

	for pass := 1; pass <= c.cfg.RetryPasses && len(failed) > 0; pass++ {
		retry := make([]links.SeasonLink, len(failed))
		for i, f := range failed {
			retry[i] = links.SeasonLink{Season: f.Season, URL: f.URL}
		}
		failed = c.runPass(ctx, retry, &result, pass)
	}

	for _, f := range failed {
		slog.Error("giving up on season",
			"season", f.Season, "url", f.URL, "err", f.Err)
	}
	result.Failed = failed
	return result, nil
}

func (c *Crawler) runPass(ctx context.Context, seasons []links.SeasonLink, result *Result, pass int) []Failure {
	var failed []Failure
	for _, link := range seasons {
		slog.Info("fetching season totals",
			"season", link.Season, "url", link.URL, "pass", pass)

		dest, err := c.processSeason(ctx, link)
		if err != nil {
			slog.Error("season failed",
				"season", link.Season, "url", link.URL, "err", err)
			failed = append(failed, Failure{Season: link.Season, URL: link.URL, Err: err})
			continue
		}

		slog.Info("saved season totals", "season", link.Season, "table", dest)
		result.Saved = append(result.Saved, dest)
	}
	return failed
}

// processSeason runs one season through the whole pipeline. Nothing is
// persisted unless extraction and shaping both succeed.
func (c *Crawler) processSeason(ctx context.Context, link links.SeasonLink) (string, error) {
	page, err := c.fetcher.Fetch(ctx, link.URL)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	table, err := parser.ExtractLabeled(page, c.cfg.Columns)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	shaped := table.WithTeamColumn()
	if c.cfg.IncludeSeason {
		shaped = shaped.WithSeasonColumn(link.Season)
	}

	dest := link.Season + destSuffix
	if err := c.sink.Save(ctx, shaped, dest); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	return dest, nil
}
