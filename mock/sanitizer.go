package mock

import "github.com/fwojciec/wikistat"

var _ wikistat.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of wikistat.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
