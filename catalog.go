package booklog

import "context"

// Status reports how a catalog operation settled.
type Status int

// Status values returned by Catalog operations.
const (
	StatusOK Status = iota
	StatusNotFound
	StatusFailed
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a fail-soft catalog operation. Err is set only
// when Status is StatusFailed.
type Result struct {
	Status Status
	Err    error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Status == StatusOK }

// NotFound reports whether a lookup found no matching book.
func (r Result) NotFound() bool { return r.Status == StatusNotFound }

// Failed reports whether the backing store failed.
func (r Result) Failed() bool { return r.Status == StatusFailed }

// Succeeded returns a successful result.
func Succeeded() Result { return Result{Status: StatusOK} }

// Missing returns a not-found result.
func Missing() Result { return Result{Status: StatusNotFound} }

// Failure returns a failed result wrapping err.
func Failure(err error) Result { return Result{Status: StatusFailed, Err: err} }

// Catalog is the fail-soft view of the book collection used by the chat
// assistant and the HTTP API. Operations never return errors; failures are
// logged by the implementation and reported through Result.
//
// Title lookups are case-insensitive exact matches on the whole title and
// resolve to the first match in store order. Two concurrent edits or deletes
// by the same title race; callers serialize if they need ordering.
type Catalog interface {
	// AddBook creates a book and assigns its ID.
	AddBook(ctx context.Context, book *Book) Result

	// EditBookByTitle overwrites title, author, genre and rating of the first
	// book titled oldTitle.
	EditBookByTitle(ctx context.Context, oldTitle string, book Book) Result

	// DeleteBookByTitle removes the first book titled title.
	DeleteBookByTitle(ctx context.Context, title string) Result

	// DeleteBookByID removes the book with the given ID.
	DeleteBookByID(ctx context.Context, id string) Result

	// FindBookByID returns the book with the given ID.
	FindBookByID(ctx context.Context, id string) (*Book, Result)

	// UpdateBookByID overwrites all editable fields of the book with the given ID.
	UpdateBookByID(ctx context.Context, id string, book Book) Result

	// ListBooks returns every book in the catalog.
	ListBooks(ctx context.Context) ([]*Book, Result)

	// SearchBooks returns books matching q.
	SearchBooks(ctx context.Context, q BookQuery) ([]*Book, Result)
}
