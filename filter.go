package booklog

import (
	"slices"
	"strings"
)

// SortKey names the field used to order books.
type SortKey string

// SortKey constants for BookQuery.
const (
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
	SortByGenre  SortKey = "genre"
)

// BookQuery describes the search box, genre dropdown and sort selector of
// the book list.
type BookQuery struct {
	// Case-insensitive substring matched against title or author.
	Search string `json:"search"`

	// Exact genre; empty matches every genre.
	Genre string `json:"genre"`

	SortBy SortKey `json:"sortBy"`
}

// FilterBooks returns the books whose title or author contains search
// (case-insensitive) and whose genre equals genre. Empty search or genre
// matches everything.
func FilterBooks(books []*Book, search, genre string) []*Book {
	search = strings.ToLower(search)

	var filtered []*Book
	for _, b := range books {
		matchesSearch := strings.Contains(strings.ToLower(b.Title), search) ||
			strings.Contains(strings.ToLower(b.Author), search)
		matchesGenre := genre == "" || b.Genre == genre
		if matchesSearch && matchesGenre {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// SortBooks sorts books in place by key, case-insensitively. Ties keep their
// original order. An empty or unknown key leaves the order unchanged.
func SortBooks(books []*Book, key SortKey) {
	var field func(*Book) string
	switch key {
	case SortByTitle:
		field = func(b *Book) string { return b.Title }
	case SortByAuthor:
		field = func(b *Book) string { return b.Author }
	case SortByGenre:
		field = func(b *Book) string { return b.Genre }
	default:
		return
	}

	slices.SortStableFunc(books, func(a, b *Book) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	})
}
