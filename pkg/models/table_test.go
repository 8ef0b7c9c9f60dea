package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawTableLabeled(t *testing.T) {
	raw := NewRawTable()
	raw.Set("Lakers", []string{"10", "20", "50.0"})
	raw.Set("Celtics", []string{"8", "18", "44.4"})

	table, err := raw.Labeled([]string{"FGM", "FGA", "FG%"})
	require.NoError(t, err)
	require.Equal(t, []string{"FGM", "FGA", "FG%"}, table.Columns)
	require.Equal(t, []string{"Lakers", "Celtics"}, table.Teams)
	require.Equal(t, []string{"10", "20", "50.0"}, table.Row("Lakers"))
	require.Equal(t, []string{"8", "18", "44.4"}, table.Row("Celtics"))
}

func TestRawTableLabeledMismatch(t *testing.T) {
	raw := NewRawTable()
	raw.Set("Lakers", []string{"10", "20"})

	_, err := raw.Labeled([]string{"FGM", "FGA", "FG%"})
	require.ErrorIs(t, err, ErrColumnMismatch)
}

func TestRawTableDuplicateTeam(t *testing.T) {
	raw := NewRawTable()
	raw.Set("Lakers", []string{"1"})
	raw.Set("Celtics", []string{"2"})
	raw.Set("Lakers", []string{"3"})

	// the later row wins, the original position is kept
	require.Equal(t, []string{"Lakers", "Celtics"}, raw.Teams())
	require.Equal(t, []string{"3"}, raw.Values("Lakers"))
}

func TestWithLeadingColumns(t *testing.T) {
	table := NewTable([]string{"FGM", "FGA", "FG%"})
	require.NoError(t, table.Append("Lakers", []string{"10", "20", "50.0"}))
	require.NoError(t, table.Append("Celtics", []string{"8", "18", "44.4"}))

	shaped := table.WithTeamColumn().WithSeasonColumn("1997-98")

	require.Equal(t, []string{"Season", "Team", "FGM", "FGA", "FG%"}, shaped.Columns)
	require.Equal(t, []string{"Lakers", "Celtics"}, shaped.Teams)
	require.Equal(t, []string{"1997-98", "Lakers", "10", "20", "50.0"}, shaped.Row("Lakers"))
	require.Equal(t, []string{"1997-98", "Celtics", "8", "18", "44.4"}, shaped.Row("Celtics"))

	// the original table is untouched
	require.Equal(t, []string{"FGM", "FGA", "FG%"}, table.Columns)
	require.Equal(t, []string{"10", "20", "50.0"}, table.Row("Lakers"))
}

func TestAppendMismatch(t *testing.T) {
	table := NewTable([]string{"FGM", "FGA"})
	err := table.Append("Lakers", []string{"10"})
	require.ErrorIs(t, err, ErrColumnMismatch)
}
