package elastic_test

import (
	"context"
	"testing"

	"github.com/fwojciec/booklog"
	"github.com/fwojciec/booklog/elastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookService(t *testing.T) *elastic.BookService {
	t.Helper()
	c, _ := setupTestClient(t)
	return elastic.NewBookService(c)
}

func createBook(t *testing.T, svc *elastic.BookService, title, author, genre string) *booklog.Book {
	t.Helper()
	book := &booklog.Book{Title: title, Author: author, Genre: genre, Rating: "4"}
	require.NoError(t, svc.CreateBook(context.Background(), book))
	return book
}

func TestBookService_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("takes ID assigned by the cluster", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)

		book := &booklog.Book{Title: "Dune", Author: "Frank Herbert"}
		require.NoError(t, svc.CreateBook(context.Background(), book))

		assert.Equal(t, "doc-1", book.ID)
		assert.Equal(t, booklog.DefaultRating, book.Rating)
		assert.False(t, book.CreatedAt.IsZero())
	})

	t.Run("returns EINVALID without author", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)

		err := svc.CreateBook(context.Background(), &booklog.Book{Title: "Dune"})
		require.Error(t, err)
		assert.Equal(t, booklog.EINVALID, booklog.ErrorCode(err))
	})
}

func TestBookService_FindBookByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored book", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		book := createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")

		found, err := svc.FindBookByID(context.Background(), book.ID)
		require.NoError(t, err)
		assert.Equal(t, book.ID, found.ID)
		assert.Equal(t, "Dune", found.Title)
		assert.Equal(t, "Frank Herbert", found.Author)
		assert.Equal(t, "Science Fiction", found.Genre)
		assert.Equal(t, "4", found.Rating)
		assert.True(t, book.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for missing book", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)

		_, err := svc.FindBookByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, booklog.ENOTFOUND, booklog.ErrorCode(err))
	})
}

func TestBookService_FindBooks(t *testing.T) {
	t.Parallel()

	t.Run("returns books in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")
		createBook(t, svc, "Emma", "Jane Austen", "Romance")

		books, err := svc.FindBooks(context.Background(), booklog.BookFilter{})
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, "Emma", books[1].Title)
	})

	t.Run("filters by genre", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")
		createBook(t, svc, "Emma", "Jane Austen", "Romance")

		genre := "Romance"
		books, err := svc.FindBooks(context.Background(), booklog.BookFilter{Genre: &genre})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Emma", books[0].Title)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")
		emma := createBook(t, svc, "Emma", "Jane Austen", "Romance")

		books, err := svc.FindBooks(context.Background(), booklog.BookFilter{ID: &emma.ID})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, emma.ID, books[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		createBook(t, svc, "A", "Author", "")
		createBook(t, svc, "B", "Author", "")
		createBook(t, svc, "C", "Author", "")

		books, err := svc.FindBooks(context.Background(), booklog.BookFilter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "B", books[0].Title)
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	t.Parallel()

	t.Run("updates set fields", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		ctx := context.Background()
		book := createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")

		rating := "5"
		updated, err := svc.UpdateBook(ctx, book.ID, booklog.BookUpdate{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, "5", updated.Rating)
		assert.Equal(t, "Dune", updated.Title)

		found, err := svc.FindBookByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "5", found.Rating)
		assert.Equal(t, "Frank Herbert", found.Author)
	})

	t.Run("returns ENOTFOUND for missing book", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)

		title := "Dune"
		_, err := svc.UpdateBook(context.Background(), "missing", booklog.BookUpdate{Title: &title})
		require.Error(t, err)
		assert.Equal(t, booklog.ENOTFOUND, booklog.ErrorCode(err))
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("removes book", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)
		ctx := context.Background()
		book := createBook(t, svc, "Dune", "Frank Herbert", "Science Fiction")

		require.NoError(t, svc.DeleteBook(ctx, book.ID))

		books, err := svc.FindBooks(ctx, booklog.BookFilter{})
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("returns ENOTFOUND for missing book", func(t *testing.T) {
		t.Parallel()

		svc := setupBookService(t)

		err := svc.DeleteBook(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, booklog.ENOTFOUND, booklog.ErrorCode(err))
	})
}
