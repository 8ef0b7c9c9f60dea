// Package export writes persisted season tables to the console, CSV or XLSX
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/myusername/nba-shooting-scraper/pkg/models"
)

// Display prints a season table as aligned columns, one line per team.
func Display(w io.Writer, table *models.Table) {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, team := range table.Teams {
		for i, v := range table.Row(team) {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	writeRow := func(values []string) {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, " | "), " "))
	}

	writeRow(table.Columns)
	rules := make([]string, len(table.Columns))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width)
	}
	writeRow(rules)
	for _, team := range table.Teams {
		writeRow(table.Row(team))
	}
}

// ToCSV saves the table to a CSV file, header row first.
func ToCSV(table *models.Table, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, team := range table.Teams {
		if err := cw.Write(table.Row(team)); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", team, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// ToXLSX saves the table to an Excel workbook with a single sheet.
func ToXLSX(table *models.Table, filename, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	writeRow := func(rowNum int, values []string) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, team := range table.Teams {
		if err := writeRow(i+2, table.Row(team)); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", team, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
