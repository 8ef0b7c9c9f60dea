// Package scraper provides functionality to fetch rendered stat pages
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the rendered markup for one URL. The orchestrator holds a
// Fetcher so tests can substitute a stub for the live client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 30 * time.Second

// the stats site serves an empty shell to clients it does not recognize
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Client fetches pages over HTTP. Connections are closed after every request
// so no session state carries over from one season to the next.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client with the given per-request timeout. A zero
// timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetCloseConnection(true).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &Client{http: client}
}

// Fetch retrieves the page at url and returns its markup.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", res.StatusCode(), res.Status())
	}
	return string(res.Body()), nil
}
