package wikistat

// Sanitizer converts HTML into plain text.
type Sanitizer interface {
	// Sanitize strips markup from html and returns its text content.
	Sanitize(html string) (string, error)
}
