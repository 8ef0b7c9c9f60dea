// Package models contains the table structures passed between the scraper stages
package models

import (
	"errors"
	"fmt"
)

// ErrColumnMismatch is returned when the number of configured column names
// does not match the number of scraped value columns.
var ErrColumnMismatch = errors.New("column count mismatch")

// RawTable holds one scraped stat table before column names are assigned.
// Rows are keyed by team name and kept in document order; each row is the
// ordered sequence of cell values with the team cell excluded.
type RawTable struct {
	teams []string
	rows  map[string][]string
}

// NewRawTable creates an empty RawTable.
func NewRawTable() *RawTable {
	return &RawTable{rows: make(map[string][]string)}
}

// Set stores a completed row for a team. If the team was already present its
// values are replaced but it keeps its original position.
func (r *RawTable) Set(team string, values []string) {
	if _, ok := r.rows[team]; !ok {
		r.teams = append(r.teams, team)
	}
	r.rows[team] = values
}

// Teams returns the team names in document order.
func (r *RawTable) Teams() []string {
	return r.teams
}

// Values returns the value sequence for a team.
func (r *RawTable) Values(team string) []string {
	return r.rows[team]
}

// Len returns the number of rows.
func (r *RawTable) Len() int {
	return len(r.teams)
}

// Labeled materializes the raw table into a rectangular Table with the given
// column names assigned positionally. Every row must have exactly len(columns)
// values; otherwise ErrColumnMismatch is returned and nothing is truncated or
// padded.
func (r *RawTable) Labeled(columns []string) (*Table, error) {
	t := &Table{
		Columns: append([]string(nil), columns...),
		rows:    make(map[string][]string, len(r.teams)),
	}
	for _, team := range r.teams {
		values := r.rows[team]
		if len(values) != len(columns) {
			return nil, fmt.Errorf("team %q has %d values for %d columns: %w",
				team, len(values), len(columns), ErrColumnMismatch)
		}
		t.Teams = append(t.Teams, team)
		t.rows[team] = append([]string(nil), values...)
	}
	return t, nil
}

// Table is a rectangular stat table: named columns, one row per team, rows
// kept in insertion order and indexed by team name.
type Table struct {
	Columns []string
	Teams   []string
	rows    map[string][]string
}

// NewTable creates an empty Table with the given column names.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		rows:    make(map[string][]string),
	}
}

// Append adds a row for a team. A row for an existing team is replaced in
// place, keeping its original position.
func (t *Table) Append(team string, values []string) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("team %q has %d values for %d columns: %w",
			team, len(values), len(t.Columns), ErrColumnMismatch)
	}
	if _, ok := t.rows[team]; !ok {
		t.Teams = append(t.Teams, team)
	}
	t.rows[team] = append([]string(nil), values...)
	return nil
}

// Row returns the values for a team, aligned with Columns.
func (t *Table) Row(team string) []string {
	return t.rows[team]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Teams)
}

// WithTeamColumn returns a copy of the table with a leading "Team" column
// whose value for each row is the row's team name. The relative order of the
// existing columns is preserved.
func (t *Table) WithTeamColumn() *Table {
	return t.withLeadingColumn("Team", func(team string) string { return team })
}

// WithSeasonColumn returns a copy of the table with a leading "Season" column
// holding the same season label for every row.
func (t *Table) WithSeasonColumn(season string) *Table {
	return t.withLeadingColumn("Season", func(string) string { return season })
}

func (t *Table) withLeadingColumn(name string, value func(team string) string) *Table {
	out := &Table{
		Columns: append([]string{name}, t.Columns...),
		Teams:   append([]string(nil), t.Teams...),
		rows:    make(map[string][]string, len(t.Teams)),
	}
	for _, team := range t.Teams {
		row := make([]string, 0, len(t.Columns)+1)
		row = append(row, value(team))
		row = append(row, t.rows[team]...)
		out.rows[team] = row
	}
	return out
}
