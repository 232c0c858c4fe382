package chat

import (
	"context"
	"fmt"

	"github.com/fwojciec/booklog"
)

// Executor runs interpreted commands against a catalog.
type Executor struct {
	catalog booklog.Catalog
}

// NewExecutor creates a new Executor.
func NewExecutor(catalog booklog.Catalog) *Executor {
	return &Executor{catalog: catalog}
}

// Execute returns the reply for cmd and whether it was handled.
// Unrecognized commands are not handled and produce an empty reply.
// Add, edit and delete call the catalog at most once before replying.
func (e *Executor) Execute(ctx context.Context, cmd Command) (string, bool) {
	if cmd.Malformed() {
		return cmd.Usage, true
	}

	switch cmd.Intent {
	case IntentHelp:
		return helpText, true
	case IntentHowToSearch:
		return howToSearchText, true
	case IntentHowToFilter:
		return howToFilterText, true
	case IntentTroubleshoot:
		return troubleshootText, true
	case IntentExplainFeature:
		return explain(cmd.Feature), true
	case IntentAddBook:
		return e.addBook(ctx, cmd.Book), true
	case IntentEditBook:
		return e.editBook(ctx, cmd.OldTitle, cmd.Book), true
	case IntentDeleteBook:
		return e.deleteBook(ctx, cmd.Title), true
	default:
		return "", false
	}
}

func explain(f Feature) string {
	switch f {
	case FeatureAddBook:
		return explainAddBookText
	case FeatureEdit:
		return explainEditText
	case FeatureDelete:
		return explainDeleteText
	default:
		return explainGenericText
	}
}

// addBook replies with the fields as typed, before the store fills defaults.
func (e *Executor) addBook(ctx context.Context, book booklog.Book) string {
	stored := book
	if res := e.catalog.AddBook(ctx, &stored); !res.OK() {
		if invalid(res) {
			return addBookUsage
		}
		return fmt.Sprintf(addFailedFormat, book.Title)
	}
	return fmt.Sprintf(addedFormat, book.Title, book.Author, book.Genre, book.Rating)
}

// invalid reports whether the store rejected the book's fields.
func invalid(res booklog.Result) bool {
	return booklog.ErrorCode(res.Err) == booklog.EINVALID
}

func (e *Executor) editBook(ctx context.Context, oldTitle string, book booklog.Book) string {
	switch res := e.catalog.EditBookByTitle(ctx, oldTitle, book); res.Status {
	case booklog.StatusOK:
		return fmt.Sprintf(updatedFormat, oldTitle, book.Title, book.Author, book.Genre, book.Rating)
	case booklog.StatusNotFound:
		return fmt.Sprintf(notFoundFormat, oldTitle)
	default:
		if invalid(res) {
			return editBookUsage
		}
		return fmt.Sprintf(updateFailedFormat, oldTitle)
	}
}

func (e *Executor) deleteBook(ctx context.Context, title string) string {
	switch res := e.catalog.DeleteBookByTitle(ctx, title); res.Status {
	case booklog.StatusOK:
		return fmt.Sprintf(deletedFormat, title)
	case booklog.StatusNotFound:
		return fmt.Sprintf(notFoundFormat, title)
	default:
		return fmt.Sprintf(deleteFailedFormat, title)
	}
}
