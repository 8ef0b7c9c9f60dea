// Package parser extracts the team shooting stat table from rendered page markup
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/nba-shooting-scraper/pkg/models"
)

var (
	// ErrNoStatTable is returned when the page has no stat table container.
	ErrNoStatTable = errors.New("no nba-stat-table container found")
	// ErrNoTableBody is returned when the stat table has no tbody section.
	ErrNoTableBody = errors.New("stat table has no tbody")
	// ErrNoTeamCell is returned when a row lacks the team label cell.
	ErrNoTeamCell = errors.New("row has no team cell")
)

// statTableSelector matches the container the site renders the stat table into.
const statTableSelector = "div.nba-stat-table"

// teamCellClass marks the label cell that carries the team name in each row.
const teamCellClass = "first"

// ExtractRaw parses the rendered page markup and returns the first stat table
// as a raw row-keyed table: team name -> ordered cell values, with the team
// cell excluded from the values. Rows are walked top to bottom and committed
// once complete; a row without a team cell (or with no cells at all) is an
// error rather than a row with an empty identifier.
func ExtractRaw(html string) (*models.RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parsing page markup: %w", err)
	}

	container := doc.Find(statTableSelector).First()
	if container.Length() == 0 {
		return nil, ErrNoStatTable
	}
	body := container.Find("tbody").First()
	if body.Length() == 0 {
		return nil, ErrNoTableBody
	}

	raw := models.NewRawTable()
	var rowErr error

	body.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		team := ""
		haveTeam := false
		var values []string

		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			if cell.HasClass(teamCellClass) {
				team = strings.TrimSpace(cell.Text())
				haveTeam = true
				return
			}
			values = append(values, strings.TrimSpace(cell.Text()))
		})

		if !haveTeam || team == "" {
			rowErr = fmt.Errorf("row %d: %w", i, ErrNoTeamCell)
			return false
		}
		raw.Set(team, values)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return raw, nil
}

// ExtractLabeled extracts the stat table and materializes it into a
// rectangular table with the given column names assigned positionally. It
// fails with models.ErrColumnMismatch when the scraped value columns do not
// line up with the configured names.
func ExtractLabeled(html string, columns []string) (*models.Table, error) {
	raw, err := ExtractRaw(html)
	if err != nil {
		return nil, err
	}
	return raw.Labeled(columns)
}
