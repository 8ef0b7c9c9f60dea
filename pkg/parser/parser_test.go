package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myusername/nba-shooting-scraper/pkg/models"
)

const twoTeamPage = `
<html><body>
<div class="some-header">Team Shooting</div>
<div class="nba-stat-table">
  <table>
    <thead><tr><th>TEAM</th><th>FGM</th><th>FGA</th><th>FG%</th></tr></thead>
    <tbody>
      <tr>
        <td class="first">Lakers</td>
        <td>10</td><td>20</td><td>50.0</td>
      </tr>
      <tr>
        <td class="first">Celtics</td>
        <td>8</td><td>18</td><td>44.4</td>
      </tr>
    </tbody>
  </table>
</div>
</body></html>`

func TestExtractRaw(t *testing.T) {
	raw, err := ExtractRaw(twoTeamPage)
	require.NoError(t, err)

	require.Equal(t, []string{"Lakers", "Celtics"}, raw.Teams())
	require.Equal(t, []string{"10", "20", "50.0"}, raw.Values("Lakers"))
	require.Equal(t, []string{"8", "18", "44.4"}, raw.Values("Celtics"))
}

func TestExtractLabeled(t *testing.T) {
	table, err := ExtractLabeled(twoTeamPage, []string{"FGM", "FGA", "FG%"})
	require.NoError(t, err)

	require.Equal(t, []string{"Lakers", "Celtics"}, table.Teams)
	require.Equal(t, []string{"FGM", "FGA", "FG%"}, table.Columns)
	require.Equal(t, []string{"10", "20", "50.0"}, table.Row("Lakers"))
	require.Equal(t, []string{"8", "18", "44.4"}, table.Row("Celtics"))
}

func TestExtractLabeledColumnMismatch(t *testing.T) {
	_, err := ExtractLabeled(twoTeamPage, []string{"FGM", "FGA"})
	require.ErrorIs(t, err, models.ErrColumnMismatch)

	_, err = ExtractLabeled(twoTeamPage, []string{"FGM", "FGA", "FG%", "3PM"})
	require.ErrorIs(t, err, models.ErrColumnMismatch)
}

func TestExtractRawNoStatTable(t *testing.T) {
	_, err := ExtractRaw(`<html><body><table><tbody></tbody></table></body></html>`)
	require.ErrorIs(t, err, ErrNoStatTable)
}

func TestExtractRawNoTableBody(t *testing.T) {
	_, err := ExtractRaw(`<html><body><div class="nba-stat-table"><p>loading...</p></div></body></html>`)
	require.ErrorIs(t, err, ErrNoTableBody)
}

func TestExtractRawNoTeamCell(t *testing.T) {
	page := `
<div class="nba-stat-table">
  <table><tbody>
    <tr><td>10</td><td>20</td></tr>
  </tbody></table>
</div>`
	_, err := ExtractRaw(page)
	require.ErrorIs(t, err, ErrNoTeamCell)
}

func TestExtractRawFirstTableOnly(t *testing.T) {
	page := `
<div class="nba-stat-table">
  <table><tbody>
    <tr><td class="first">Lakers</td><td>10</td></tr>
  </tbody></table>
</div>
<div class="nba-stat-table">
  <table><tbody>
    <tr><td class="first">Bulls</td><td>99</td></tr>
  </tbody></table>
</div>`
	raw, err := ExtractRaw(page)
	require.NoError(t, err)
	require.Equal(t, []string{"Lakers"}, raw.Teams())
}

func TestExtractRawTrimsWhitespace(t *testing.T) {
	page := `
<div class="nba-stat-table">
  <table><tbody>
    <tr><td class="first">
      Lakers
    </td><td> 10 </td></tr>
  </tbody></table>
</div>`
	raw, err := ExtractRaw(page)
	require.NoError(t, err)
	require.Equal(t, []string{"Lakers"}, raw.Teams())
	require.Equal(t, []string{"10"}, raw.Values("Lakers"))
}
