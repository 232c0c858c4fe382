package mock

import (
	"context"

	"github.com/fwojciec/booklog"
)

var _ booklog.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of booklog.Catalog.
type Catalog struct {
	AddBookFn           func(ctx context.Context, book *booklog.Book) booklog.Result
	EditBookByTitleFn   func(ctx context.Context, oldTitle string, book booklog.Book) booklog.Result
	DeleteBookByTitleFn func(ctx context.Context, title string) booklog.Result
	DeleteBookByIDFn    func(ctx context.Context, id string) booklog.Result
	FindBookByIDFn      func(ctx context.Context, id string) (*booklog.Book, booklog.Result)
	UpdateBookByIDFn    func(ctx context.Context, id string, book booklog.Book) booklog.Result
	ListBooksFn         func(ctx context.Context) ([]*booklog.Book, booklog.Result)
	SearchBooksFn       func(ctx context.Context, q booklog.BookQuery) ([]*booklog.Book, booklog.Result)
}

func (c *Catalog) AddBook(ctx context.Context, book *booklog.Book) booklog.Result {
	return c.AddBookFn(ctx, book)
}

func (c *Catalog) EditBookByTitle(ctx context.Context, oldTitle string, book booklog.Book) booklog.Result {
	return c.EditBookByTitleFn(ctx, oldTitle, book)
}

func (c *Catalog) DeleteBookByTitle(ctx context.Context, title string) booklog.Result {
	return c.DeleteBookByTitleFn(ctx, title)
}

func (c *Catalog) DeleteBookByID(ctx context.Context, id string) booklog.Result {
	return c.DeleteBookByIDFn(ctx, id)
}

func (c *Catalog) FindBookByID(ctx context.Context, id string) (*booklog.Book, booklog.Result) {
	return c.FindBookByIDFn(ctx, id)
}

func (c *Catalog) UpdateBookByID(ctx context.Context, id string, book booklog.Book) booklog.Result {
	return c.UpdateBookByIDFn(ctx, id, book)
}

func (c *Catalog) ListBooks(ctx context.Context) ([]*booklog.Book, booklog.Result) {
	return c.ListBooksFn(ctx)
}

func (c *Catalog) SearchBooks(ctx context.Context, q booklog.BookQuery) ([]*booklog.Book, booklog.Result) {
	return c.SearchBooksFn(ctx, q)
}
