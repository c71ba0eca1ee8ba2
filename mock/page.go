package mock

import (
	"context"

	"github.com/fwojciec/wikistat"
)

var _ wikistat.PageService = (*PageService)(nil)

// PageService is a mock implementation of wikistat.PageService.
type PageService struct {
	SearchFn func(ctx context.Context, title string) (*wikistat.Page, error)
}

func (s *PageService) Search(ctx context.Context, title string) (*wikistat.Page, error) {
	return s.SearchFn(ctx, title)
}
