package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-shooting-scraper/internal/export"
	"github.com/myusername/nba-shooting-scraper/internal/store"
)

var outPath string

var exportCmd = &cobra.Command{
	Use:   "export SEASON",
	Short: "Print a persisted season table, or export it to CSV/XLSX with --out.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		dest := args[0]
		if !strings.HasSuffix(dest, "_totals") {
			dest += "_totals"
		}

		table, err := db.Load(cmd.Context(), dest)
		if err != nil {
			return err
		}

		if outPath == "" {
			export.Display(os.Stdout, table)
			return nil
		}

		switch ext := filepath.Ext(outPath); ext {
		case ".csv":
			err = export.ToCSV(table, outPath)
		case ".xlsx":
			err = export.ToXLSX(table, outPath, dest)
		default:
			return fmt.Errorf("unsupported output extension %q (want .csv or .xlsx)", ext)
		}
		if err != nil {
			return err
		}

		fmt.Printf("exported %s to %s\n", dest, outPath)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the season tables persisted in the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		names, err := db.ListDestinations(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (.csv or .xlsx); prints to stdout when omitted")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
}
