package main

import (
	"fmt"

	"github.com/fwojciec/booklog"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	q := booklog.BookQuery{Search: c.Search, Genre: c.Genre}
	if c.Sort != "none" {
		q.SortBy = booklog.SortKey(c.Sort)
	}

	books, res := deps.Catalog.SearchBooks(deps.Ctx, q)
	if !res.OK() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", booklog.ErrorMessage(res.Err))
		return res.Err
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No books found. Use 'booklog add' to add one.")
		return nil
	}

	for _, b := range books {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n", b.ID, b.Title, b.Author, b.Genre, b.Rating)
	}

	return nil
}
