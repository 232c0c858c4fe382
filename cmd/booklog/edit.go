package main

import (
	"fmt"

	"github.com/fwojciec/booklog"
)

// Run executes the edit command. Flags left empty keep the current value.
func (c *EditCmd) Run(deps *Dependencies) error {
	book, err := findBook(deps, c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		book.Title = c.Title
	}
	if c.Author != "" {
		book.Author = c.Author
	}
	if c.Genre != "" {
		book.Genre = c.Genre
	}
	if c.Rating != "" {
		book.Rating = c.Rating
	}

	res := deps.Catalog.UpdateBookByID(deps.Ctx, c.ID, *book)
	if !res.OK() {
		return reportResult(deps, c.ID, res)
	}

	fmt.Fprintf(deps.Stdout, "Updated book %q\n", book.Title)
	return nil
}

// findBook fetches a book by ID and reports a missing book on stderr.
func findBook(deps *Dependencies, id string) (*booklog.Book, error) {
	book, res := deps.Catalog.FindBookByID(deps.Ctx, id)
	if !res.OK() {
		return nil, reportResult(deps, id, res)
	}
	return book, nil
}

// reportResult prints a failed result and returns it as an error.
func reportResult(deps *Dependencies, id string, res booklog.Result) error {
	if res.NotFound() {
		fmt.Fprintf(deps.Stderr, "error: book %q not found. Use 'booklog list' to see available books.\n", id)
		return booklog.Errorf(booklog.ENOTFOUND, "book %q not found", id)
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", booklog.ErrorMessage(res.Err))
	return res.Err
}
