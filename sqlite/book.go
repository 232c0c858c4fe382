package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/booklog"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ booklog.BookService = (*BookService)(nil)

// BookService implements booklog.BookService using SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

// CreateBook creates a new book.
func (s *BookService) CreateBook(ctx context.Context, book *booklog.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}
	if book.Rating == "" {
		book.Rating = booklog.DefaultRating
	}

	book.ID = uuid.New().String()
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, title, author, genre, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, book.ID, book.Title, book.Author, book.Genre, book.Rating,
		formatTime(book.CreatedAt), formatTime(book.UpdatedAt))

	return err
}

// FindBookByID retrieves a book by ID.
func (s *BookService) FindBookByID(ctx context.Context, id string) (*booklog.Book, error) {
	book, err := scanBook(s.db.QueryRowContext(ctx, `
		SELECT id, title, author, genre, rating, created_at, updated_at
		FROM books
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booklog.Errorf(booklog.ENOTFOUND, "book not found")
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// FindBooks retrieves books matching the filter in insertion order.
func (s *BookService) FindBooks(ctx context.Context, filter booklog.BookFilter) ([]*booklog.Book, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, author, genre, rating, created_at, updated_at FROM books WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Genre != nil {
		query.WriteString(" AND genre = ?")
		args = append(args, *filter.Genre)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*booklog.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

// UpdateBook updates an existing book.
func (s *BookService) UpdateBook(ctx context.Context, id string, upd booklog.BookUpdate) (*booklog.Book, error) {
	book, err := s.FindBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(book)

	if err := book.Validate(); err != nil {
		return nil, err
	}

	book.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE books
		SET title = ?, author = ?, genre = ?, rating = ?, updated_at = ?
		WHERE id = ?
	`, book.Title, book.Author, book.Genre, book.Rating, formatTime(book.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook permanently removes a book.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return booklog.Errorf(booklog.ENOTFOUND, "book not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(row scanner) (*booklog.Book, error) {
	var book booklog.Book
	var createdAt, updatedAt string

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.Rating,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if book.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if book.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &book, nil
}
