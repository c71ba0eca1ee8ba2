package main

import "fmt"

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	page, err := deps.Identities.Search(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorHint(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d %s\n", page.ID, page.Title)
	return nil
}
