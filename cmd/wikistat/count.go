package main

import (
	"fmt"

	"github.com/fwojciec/wikistat"
)

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Search(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorHint(err))
		return err
	}

	text, err := deps.Sanitizer.Sanitize(page.Contents)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikistat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, wikistat.NewWordCount(page.Title, text))
	return nil
}

// errorHint returns the message shown to the user for a failed lookup.
func errorHint(err error) string {
	switch wikistat.ErrorCode(err) {
	case wikistat.EQUERYEMPTY:
		return "title must not be empty"
	case wikistat.ENOTFOUND:
		return wikistat.ErrorMessage(err) + ". Check the spelling or try the exact article title."
	case wikistat.ETRANSPORT:
		return wikistat.ErrorMessage(err) + ". Check your network connection or raise --timeout."
	default:
		return wikistat.ErrorMessage(err)
	}
}
