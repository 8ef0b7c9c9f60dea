// Package commands implements the CLI surface of the scraper
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nba-shooting-scraper",
	Short: "nba-shooting-scraper crawls NBA team shooting totals into a local sqlite database.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "team_shooting.db", "path to the sqlite database")

	verbose := rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	cobra.OnInitialize(func() {
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	})
}

// ExecuteContext runs the CLI.
func ExecuteContext(ctx context.Context, version string) {
	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
