package mediawiki

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/wikistat"
)

// Ensure PageService implements wikistat.PageService at compile time.
var _ wikistat.PageService = (*PageService)(nil)

// PageService resolves article titles through the MediaWiki action API.
// It holds no mutable state and is safe for concurrent use.
type PageService struct {
	fetcher  wikistat.Fetcher
	endpoint string
	strict   bool
	extracts bool
}

// Option configures a PageService.
type Option func(*PageService)

// WithEndpoint sets the api.php endpoint.
// Defaults to DefaultEndpoint if not specified.
func WithEndpoint(endpoint string) Option {
	return func(s *PageService) {
		s.endpoint = endpoint
	}
}

// WithStrict makes incomplete page records fail the search with EDECODE
// instead of being skipped.
func WithStrict() Option {
	return func(s *PageService) {
		s.strict = true
	}
}

// WithIdentityOnly drops prop=extracts from requests. Returned pages carry
// only ID and Title.
func WithIdentityOnly() Option {
	return func(s *PageService) {
		s.extracts = false
	}
}

// NewPageService creates a PageService that fetches through fetcher.
func NewPageService(fetcher wikistat.Fetcher, opts ...Option) *PageService {
	s := &PageService{
		fetcher:  fetcher,
		endpoint: DefaultEndpoint,
		extracts: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the first complete page the API reports for title.
// Every call issues exactly one request; nothing is cached.
func (s *PageService) Search(ctx context.Context, title string) (*wikistat.Page, error) {
	if title == "" {
		return nil, wikistat.Errorf(wikistat.EQUERYEMPTY, "query is empty")
	}

	q, err := BuildQuery(s.endpoint, title, s.extracts)
	if err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, q.URL())
	if err != nil {
		switch wikistat.ErrorCode(err) {
		case wikistat.ETRANSPORT, wikistat.EIO:
			return nil, err
		default:
			return nil, wikistat.WrapError(wikistat.ETRANSPORT, err, "failed to fetch %q", title)
		}
	}
	if !utf8.ValidString(body) {
		return nil, wikistat.Errorf(wikistat.EIO, "response body for %q is not valid UTF-8", title)
	}

	pages, err := decodePages(body, decodeOptions{extracts: s.extracts, strict: s.strict})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, wikistat.Errorf(wikistat.ENOTFOUND, "page %q not found", title)
	}
	return pages[0], nil
}
