// Package http provides an HTTP-based implementation of wikistat.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/wikistat"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the remote API. Wikimedia
// rejects requests without a descriptive User-Agent.
const DefaultUserAgent = "wikistat/1.0 (https://github.com/fwojciec/wikistat)"

// Ensure Fetcher implements wikistat.Fetcher at compile time.
var _ wikistat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies from URLs using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
// Ignored when a client is supplied with WithClient.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient uses client instead of a Fetcher-owned http.Client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the full response body from the given URL.
//
// The body is returned whatever the status code; the API reports its own
// errors in the body and callers classify what they cannot decode.
// Connection failures, timeouts and cancellation are reported as
// ETRANSPORT. A body that cannot be read to completion is reported as EIO.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wikistat.WrapError(wikistat.ETRANSPORT, err, "failed to create request for %s", url)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wikistat.WrapError(wikistat.ETRANSPORT, err, "request to %s failed", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return "", wikistat.WrapError(wikistat.ETRANSPORT, err, "request to %s timed out", url)
		}
		return "", wikistat.WrapError(wikistat.EIO, err, "failed to read response body from %s", url)
	}

	return string(body), nil
}

// isTimeout reports whether a body read failed because the request was
// cancelled or ran out of time rather than because the stream broke.
func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
