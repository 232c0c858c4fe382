// Package catalog implements the fail-soft book catalog on top of a
// booklog.BookService.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/booklog"
)

var _ booklog.Catalog = (*Store)(nil)

// Store implements booklog.Catalog. Every operation is attempted once;
// backend errors are logged and reported as StatusFailed.
type Store struct {
	books  booklog.BookService
	logger *slog.Logger
}

// NewStore creates a new Store. A nil logger discards log output.
func NewStore(books booklog.BookService, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{books: books, logger: logger}
}

// AddBook creates book and assigns its ID. An empty rating is stored as
// booklog.DefaultRating.
func (s *Store) AddBook(ctx context.Context, book *booklog.Book) booklog.Result {
	if book.Rating == "" {
		book.Rating = booklog.DefaultRating
	}
	if err := s.books.CreateBook(ctx, book); err != nil {
		return s.fail(ctx, "error adding book", err, "title", book.Title)
	}
	return booklog.Succeeded()
}

// EditBookByTitle overwrites the first book whose title equals oldTitle,
// ignoring case.
func (s *Store) EditBookByTitle(ctx context.Context, oldTitle string, book booklog.Book) booklog.Result {
	found, res := s.findByTitle(ctx, oldTitle)
	if !res.OK() {
		return res
	}
	if _, err := s.books.UpdateBook(ctx, found.ID, booklog.Replace(book)); err != nil {
		return s.fail(ctx, "error editing book", err, "title", oldTitle, "id", found.ID)
	}
	return booklog.Succeeded()
}

// DeleteBookByTitle removes the first book whose title equals title,
// ignoring case.
func (s *Store) DeleteBookByTitle(ctx context.Context, title string) booklog.Result {
	found, res := s.findByTitle(ctx, title)
	if !res.OK() {
		return res
	}
	if err := s.books.DeleteBook(ctx, found.ID); err != nil {
		s.logger.Error("error deleting book", "title", title, "id", found.ID, "err", err)
		return booklog.Failure(err)
	}
	return booklog.Succeeded()
}

// DeleteBookByID removes the book with the given ID.
func (s *Store) DeleteBookByID(ctx context.Context, id string) booklog.Result {
	if err := s.books.DeleteBook(ctx, id); err != nil {
		return s.failOrMissing(ctx, "error deleting book", id, err)
	}
	return booklog.Succeeded()
}

// FindBookByID returns the book with the given ID.
func (s *Store) FindBookByID(ctx context.Context, id string) (*booklog.Book, booklog.Result) {
	book, err := s.books.FindBookByID(ctx, id)
	if err != nil {
		return nil, s.failOrMissing(ctx, "error fetching book", id, err)
	}
	return book, booklog.Succeeded()
}

// UpdateBookByID overwrites title, author, genre and rating of the book
// with the given ID.
func (s *Store) UpdateBookByID(ctx context.Context, id string, book booklog.Book) booklog.Result {
	if _, err := s.books.UpdateBook(ctx, id, booklog.Replace(book)); err != nil {
		return s.failOrMissing(ctx, "error updating book", id, err)
	}
	return booklog.Succeeded()
}

// ListBooks returns every book in store order.
func (s *Store) ListBooks(ctx context.Context) ([]*booklog.Book, booklog.Result) {
	books, err := s.books.FindBooks(ctx, booklog.BookFilter{})
	if err != nil {
		s.logger.Error("error loading books", "err", err)
		return nil, booklog.Failure(err)
	}
	return books, booklog.Succeeded()
}

// SearchBooks lists the catalog, then filters and sorts it in memory.
func (s *Store) SearchBooks(ctx context.Context, q booklog.BookQuery) ([]*booklog.Book, booklog.Result) {
	books, res := s.ListBooks(ctx)
	if !res.OK() {
		return nil, res
	}
	books = booklog.FilterBooks(books, q.Search, q.Genre)
	booklog.SortBooks(books, q.SortBy)
	return books, res
}

// findByTitle scans the catalog for the first case-insensitive title match.
func (s *Store) findByTitle(ctx context.Context, title string) (*booklog.Book, booklog.Result) {
	books, res := s.ListBooks(ctx)
	if !res.OK() {
		return nil, res
	}
	for _, b := range books {
		if strings.EqualFold(b.Title, title) {
			return b, booklog.Succeeded()
		}
	}
	return nil, booklog.Missing()
}

// failOrMissing maps ENOTFOUND to a not-found result and fails on anything else.
func (s *Store) failOrMissing(ctx context.Context, msg, id string, err error) booklog.Result {
	if booklog.ErrorCode(err) == booklog.ENOTFOUND {
		return booklog.Missing()
	}
	return s.fail(ctx, msg, err, "id", id)
}

// fail logs err and reports it as a failed result. Rejected input is a
// caller mistake and is logged at warn level.
func (s *Store) fail(ctx context.Context, msg string, err error, args ...any) booklog.Result {
	level := slog.LevelError
	if booklog.ErrorCode(err) == booklog.EINVALID {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, msg, append(args, "err", err)...)
	return booklog.Failure(err)
}
