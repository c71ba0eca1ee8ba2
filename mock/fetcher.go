package mock

import (
	"context"

	"github.com/fwojciec/wikistat"
)

var _ wikistat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikistat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn, or returns nil when it is unset.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
