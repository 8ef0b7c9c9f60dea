// Package links generates the season-keyed request URLs for a year range
package links

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder is the token in the URL template that gets replaced with the
// season label. A literal token is used instead of a fmt verb because the
// stats site URLs carry percent-escapes of their own.
const Placeholder = "{season}"

// ErrBadTemplate is returned when the URL template does not contain exactly
// one season placeholder.
var ErrBadTemplate = errors.New("url template must contain exactly one {season} placeholder")

// ErrBadYearRange is returned when the start year is not before the end year.
var ErrBadYearRange = errors.New("start year must be before end year")

// SeasonLink pairs a season label with the concrete URL to request for it.
type SeasonLink struct {
	Season string
	URL    string
}

// SeasonLabel formats the label for the season starting in the given year,
// e.g. 1997 -> "1997-98". The ending year wraps at the century boundary, so
// 1999 -> "1999-00".
func SeasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// Generate maps a URL template and a year range to the ordered list of season
// links to crawl. One link is produced per year in [start, end), in
// chronological order, with the season label substituted into the template.
func Generate(urlTemplate string, start, end int) ([]SeasonLink, error) {
	if start >= end {
		return nil, fmt.Errorf("%w: got %d..%d", ErrBadYearRange, start, end)
	}
	if strings.Count(urlTemplate, Placeholder) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrBadTemplate, urlTemplate)
	}

	seasons := make([]SeasonLink, 0, end-start)
	for year := start; year < end; year++ {
		label := SeasonLabel(year)
		seasons = append(seasons, SeasonLink{
			Season: label,
			URL:    strings.ReplaceAll(urlTemplate, Placeholder, label),
		})
	}
	return seasons, nil
}
