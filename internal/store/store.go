// Package store persists shaped season tables into a local sqlite database
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/myusername/nba-shooting-scraper/pkg/models"
)

// ErrEmptyTable is returned when asked to persist a table with no columns or
// no rows.
var ErrEmptyTable = errors.New("refusing to save empty table")

// ErrNoSuchTable is returned by Load when the destination does not exist.
var ErrNoSuchTable = errors.New("no such table")

// Store writes season tables to a sqlite database, one database table per
// season.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already opened database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the table under the destination name, fully replacing any prior
// contents of that destination. All columns are stored as TEXT in the table's
// column order; no implicit row-number column is added. The drop, create and
// inserts happen in one transaction, so a failed save leaves the previous
// contents untouched.
func (s *Store) Save(ctx context.Context, table *models.Table, dest string) error {
	if table == nil || len(table.Columns) == 0 || table.Len() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTable, dest)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(dest)); err != nil {
		return fmt.Errorf("error dropping %s: %w", dest, err)
	}

	columnDefs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columnDefs[i] = quoteIdent(col) + " TEXT"
	}
	createStmt := fmt.Sprintf("CREATE TABLE %s (%s)",
		quoteIdent(dest), strings.Join(columnDefs, ", "))
	if _, err := tx.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("error creating %s: %w", dest, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")
	insertStmt := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(dest), placeholders)
	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, team := range table.Teams {
		row := table.Row(team)
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("error inserting row for %s: %w", team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing %s: %w", dest, err)
	}
	return nil
}

// Load reads a persisted destination back into a rectangular table. The "Team"
// column indexes the rows when present; otherwise the first column does.
func (s *Store) Load(ctx context.Context, dest string) (*models.Table, error) {
	exists, err := s.tableExists(ctx, dest)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchTable, dest)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(dest))
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", dest, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", dest, err)
	}

	teamIdx := 0
	for i, col := range columns {
		if col == "Team" {
			teamIdx = i
			break
		}
	}

	table := models.NewTable(columns)
	for rows.Next() {
		values := make([]string, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("error scanning row of %s: %w", dest, err)
		}
		if err := table.Append(values[teamIdx], values); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", dest, err)
	}
	return table, nil
}

// ListDestinations returns the names of the persisted season tables in
// alphabetical order.
func (s *Store) ListDestinations(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking for table %s: %w", name, err)
	}
	return count > 0, nil
}

// quoteIdent quotes a sqlite identifier; season labels and stat column names
// contain characters like '-', '<' and '%'.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
