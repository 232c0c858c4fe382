package mock

import (
	"context"

	"github.com/fwojciec/booklog"
)

var _ booklog.BookService = (*BookService)(nil)

// BookService is a mock implementation of booklog.BookService.
type BookService struct {
	CreateBookFn   func(ctx context.Context, book *booklog.Book) error
	FindBookByIDFn func(ctx context.Context, id string) (*booklog.Book, error)
	FindBooksFn    func(ctx context.Context, filter booklog.BookFilter) ([]*booklog.Book, error)
	UpdateBookFn   func(ctx context.Context, id string, upd booklog.BookUpdate) (*booklog.Book, error)
	DeleteBookFn   func(ctx context.Context, id string) error
}

func (s *BookService) CreateBook(ctx context.Context, book *booklog.Book) error {
	return s.CreateBookFn(ctx, book)
}

func (s *BookService) FindBookByID(ctx context.Context, id string) (*booklog.Book, error) {
	return s.FindBookByIDFn(ctx, id)
}

func (s *BookService) FindBooks(ctx context.Context, filter booklog.BookFilter) ([]*booklog.Book, error) {
	return s.FindBooksFn(ctx, filter)
}

func (s *BookService) UpdateBook(ctx context.Context, id string, upd booklog.BookUpdate) (*booklog.Book, error) {
	return s.UpdateBookFn(ctx, id, upd)
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	return s.DeleteBookFn(ctx, id)
}
