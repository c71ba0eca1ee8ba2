package wikistat

import "context"

// Page represents a single resolved encyclopedia article.
// A Page is only built from a complete upstream record and is not
// modified after it is returned.
type Page struct {
	ID       int64
	Title    string
	Contents string // Extract; may be empty in identity-only lookups
}

// PageService looks up articles by title.
type PageService interface {
	// Search resolves title to its first complete article record.
	// Returns EQUERYEMPTY for an empty title and ENOTFOUND when the
	// response holds no complete record.
	Search(ctx context.Context, title string) (*Page, error)
}
