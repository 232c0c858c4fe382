package elastic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/booklog"
	"github.com/olivere/elastic/v7"
)

// maxResults is Elasticsearch's default max_result_window.
const maxResults = 10000

// Compile-time interface verification.
var _ booklog.BookService = (*BookService)(nil)

// BookService implements booklog.BookService using Elasticsearch.
// Writes use refresh=wait_for so a following FindBooks sees them.
type BookService struct {
	c *Client
}

// NewBookService creates a new BookService.
func NewBookService(c *Client) *BookService {
	return &BookService{c: c}
}

// document is the stored form of a book. The ID lives in the document
// metadata, not the source.
type document struct {
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Rating    string    `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDocument(b *booklog.Book) document {
	return document{
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Rating:    b.Rating,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (d document) book(id string) *booklog.Book {
	return &booklog.Book{
		ID:        id,
		Title:     d.Title,
		Author:    d.Author,
		Genre:     d.Genre,
		Rating:    d.Rating,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CreateBook indexes a new book and takes the ID Elasticsearch assigns.
func (s *BookService) CreateBook(ctx context.Context, book *booklog.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}
	if book.Rating == "" {
		book.Rating = booklog.DefaultRating
	}

	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	res, err := s.c.client.Index().
		Index(s.c.index).
		BodyJson(newDocument(book)).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index book: %w", err)
	}

	book.ID = res.Id
	return nil
}

// FindBookByID retrieves a book by ID.
func (s *BookService) FindBookByID(ctx context.Context, id string) (*booklog.Book, error) {
	res, err := s.c.client.Get().
		Index(s.c.index).
		Id(id).
		Do(ctx)
	if elastic.IsNotFound(err) || (err == nil && !res.Found) {
		return nil, booklog.Errorf(booklog.ENOTFOUND, "book not found")
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(res.Source, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode book %q: %w", id, err)
	}
	return doc.book(res.Id), nil
}

// FindBooks retrieves books matching the filter, oldest first.
func (s *BookService) FindBooks(ctx context.Context, filter booklog.BookFilter) ([]*booklog.Book, error) {
	query := elastic.NewBoolQuery()
	if filter.ID != nil {
		query.Filter(elastic.NewIdsQuery().Ids(*filter.ID))
	}
	if filter.Genre != nil {
		query.Filter(elastic.NewTermQuery("genre", *filter.Genre))
	}

	size := maxResults
	if filter.Limit > 0 {
		size = filter.Limit
	}

	res, err := s.c.client.Search().
		Index(s.c.index).
		Query(query).
		Sort("created_at", true).
		From(filter.Offset).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]*booklog.Book, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc document
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode book %q: %w", hit.Id, err)
		}
		books = append(books, doc.book(hit.Id))
	}
	return books, nil
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

	_, err = s.c.client.Update().
		Index(s.c.index).
		Id(id).
		Doc(newDocument(book)).
		Refresh("wait_for").
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil, booklog.Errorf(booklog.ENOTFOUND, "book not found")
	}
	if err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook permanently removes a book.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	_, err := s.c.client.Delete().
		Index(s.c.index).
		Id(id).
		Refresh("wait_for").
		Do(ctx)
	if elastic.IsNotFound(err) {
		return booklog.Errorf(booklog.ENOTFOUND, "book not found")
	}
	return err
}
