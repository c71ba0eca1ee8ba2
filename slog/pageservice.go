package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikistat"
)

// Ensure LoggingPageService implements wikistat.PageService.
var _ wikistat.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with search logging.
type LoggingPageService struct {
	next   wikistat.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next wikistat.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the lookup.
// Failed lookups are logged at warn level with their error code.
func (s *LoggingPageService) Search(ctx context.Context, title string) (page *wikistat.Page, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("search",
				"title", title,
				"code", wikistat.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("search",
			"title", title,
			"id", page.ID,
			"resolved", page.Title,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(ctx, title)
}
