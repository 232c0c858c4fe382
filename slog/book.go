// Package slog provides logging decorators for booklog services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/booklog"
)

// Ensure LoggingBookService implements booklog.BookService.
var _ booklog.BookService = (*LoggingBookService)(nil)

// LoggingBookService wraps a BookService with debug logging.
type LoggingBookService struct {
	next   booklog.BookService
	logger *slog.Logger
}

// NewLoggingBookService creates a new LoggingBookService.
func NewLoggingBookService(next booklog.BookService, logger *slog.Logger) *LoggingBookService {
	return &LoggingBookService{next: next, logger: logger}
}

// CreateBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) CreateBook(ctx context.Context, book *booklog.Book) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create book",
			"id", book.ID,
			"title", book.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBook(ctx, book)
}

// FindBookByID delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBookByID(ctx context.Context, id string) (book *booklog.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find book",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBookByID(ctx, id)
}

// FindBooks delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) FindBooks(ctx context.Context, filter booklog.BookFilter) (books []*booklog.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find books",
			"count", len(books),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBooks(ctx, filter)
}

// UpdateBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) UpdateBook(ctx context.Context, id string, upd booklog.BookUpdate) (book *booklog.Book, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("update book",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateBook(ctx, id, upd)
}

// DeleteBook delegates to the wrapped service and logs the operation.
func (s *LoggingBookService) DeleteBook(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete book",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBook(ctx, id)
}
