// Package goquery implements wikistat.Sanitizer using goquery to strip
// markup from article extracts.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikistat"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements wikistat.Sanitizer at compile time.
var _ wikistat.Sanitizer = (*Sanitizer)(nil)

// blockSelector matches elements whose boundaries separate words even
// when the source has no whitespace between them.
const blockSelector = "address, article, aside, blockquote, br, dd, div, dl, dt, " +
	"figcaption, figure, footer, h1, h2, h3, h4, h5, h6, header, hr, li, " +
	"main, nav, ol, p, pre, section, table, td, th, tr, ul"

// Sanitizer strips HTML tags and returns the text content.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize parses html, drops script and style elements, and returns the
// remaining text. A newline is inserted after every block-level element.
func (s *Sanitizer) Sanitize(htmlText string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", wikistat.WrapError(wikistat.EINVALID, err, "failed to parse HTML")
	}

	doc.Find("script, style, noscript, template").Remove()

	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AfterNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})

	return doc.Text(), nil
}
