package booklog

import (
	"context"
	"time"
)

// DefaultRating is stored when a book is added without a rating.
const DefaultRating = "N/A"

// Genres lists the genres offered when adding a book through the web form.
// Genre is free text everywhere else; this list is advisory.
var Genres = []string{
	"Fiction",
	"Non-Fiction",
	"Mystery",
	"Fantasy",
	"Science Fiction",
	"Romance",
	"Biography",
	"History",
	"Self-Help",
	"Other",
}

// Book represents a single entry in the catalog.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Rating    string    `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the book contains invalid fields.
func (b *Book) Validate() error {
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	if b.Author == "" {
		return Errorf(EINVALID, "book author required")
	}
	return nil
}

// BookService represents a service for managing books in a backing store.
type BookService interface {
	// CreateBook creates a new book and assigns its ID.
	CreateBook(ctx context.Context, book *Book) error

	// FindBookByID retrieves a book by ID.
	// Returns ENOTFOUND if book does not exist.
	FindBookByID(ctx context.Context, id string) (*Book, error)

	// FindBooks retrieves books matching the filter, oldest first.
	FindBooks(ctx context.Context, filter BookFilter) ([]*Book, error)

	// UpdateBook updates an existing book.
	// Returns ENOTFOUND if book does not exist.
	UpdateBook(ctx context.Context, id string, upd BookUpdate) (*Book, error)

	// DeleteBook permanently removes a book.
	// Returns ENOTFOUND if book does not exist.
	DeleteBook(ctx context.Context, id string) error
}

// BookFilter represents a filter for FindBooks.
type BookFilter struct {
	ID    *string `json:"id"`
	Genre *string `json:"genre"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BookUpdate represents fields that can be updated on a book.
type BookUpdate struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
	Rating *string `json:"rating"`
}

// Replace returns an update that overwrites every editable field with the
// values from b.
func Replace(b Book) BookUpdate {
	return BookUpdate{
		Title:  &b.Title,
		Author: &b.Author,
		Genre:  &b.Genre,
		Rating: &b.Rating,
	}
}

// Apply copies the set fields of upd onto b.
func (upd BookUpdate) Apply(b *Book) {
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Genre != nil {
		b.Genre = *upd.Genre
	}
	if upd.Rating != nil {
		b.Rating = *upd.Rating
	}
}
