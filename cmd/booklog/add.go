package main

import (
	"fmt"

	"github.com/fwojciec/booklog"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	book := &booklog.Book{
		Title:  c.Title,
		Author: c.Author,
		Genre:  c.Genre,
		Rating: c.Rating,
	}

	if res := deps.Catalog.AddBook(deps.Ctx, book); !res.OK() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booklog.ErrorMessage(res.Err))
		return res.Err
	}

	fmt.Fprintf(deps.Stdout, "Added book %q by %s (ID: %s)\n", book.Title, book.Author, book.ID)
	return nil
}
