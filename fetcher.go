package wikistat

import "context"

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch issues a GET to url and returns the full response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}
