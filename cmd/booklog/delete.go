package main

import (
	"fmt"

	"github.com/fwojciec/booklog"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return booklog.Errorf(booklog.EINVALID, "use --force to confirm deletion")
	}

	book, err := findBook(deps, c.ID)
	if err != nil {
		return err
	}

	if res := deps.Catalog.DeleteBookByID(deps.Ctx, c.ID); !res.OK() {
		return reportResult(deps, c.ID, res)
	}

	fmt.Fprintf(deps.Stdout, "Deleted book %q\n", book.Title)
	return nil
}
