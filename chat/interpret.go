// Package chat implements the BookLog chat assistant: a rule-based
// interpreter that classifies one line of text into an intent, an executor
// that runs the intent against the catalog, and a Bot that falls back to a
// generative model for anything the rules do not recognize.
package chat

import (
	"strings"

	"github.com/fwojciec/booklog"
)

// Intent is the classified purpose of a chat line.
type Intent string

// Intents in the order they are matched.
const (
	IntentHelp           Intent = "help"
	IntentHowToSearch    Intent = "how_to_search"
	IntentHowToFilter    Intent = "how_to_filter"
	IntentTroubleshoot   Intent = "troubleshoot"
	IntentExplainFeature Intent = "explain_feature"
	IntentAddBook        Intent = "add_book"
	IntentEditBook       Intent = "edit_book"
	IntentDeleteBook     Intent = "delete_book"
	IntentUnrecognized   Intent = "unrecognized"
)

// Feature is the button an ExplainFeature command asks about.
type Feature string

// Feature values for IntentExplainFeature.
const (
	FeatureAddBook Feature = "add_book"
	FeatureEdit    Feature = "edit"
	FeatureDelete  Feature = "delete"
	FeatureGeneric Feature = "generic"
)

// Command prefixes matched case-insensitively at the start of a line.
const (
	addBookPrefix    = "add book"
	editBookPrefix   = "edit book"
	deleteBookPrefix = "delete book"
)

// editFields is the number of comma-separated fields "edit book" requires.
const editFields = 5

// Command is a classified chat line with its extracted arguments.
type Command struct {
	Intent Intent

	// Feature is set for IntentExplainFeature.
	Feature Feature

	// Book holds the fields of an added book, or the new fields of an
	// edited one.
	Book booklog.Book

	// OldTitle is the title to look up for IntentEditBook.
	OldTitle string

	// Title is the title to delete for IntentDeleteBook.
	Title string

	// Usage is a hint for a malformed add/edit/delete command. Commands with
	// a usage hint never reach the catalog.
	Usage string

	// Input is the trimmed line as typed.
	Input string
}

// Malformed reports whether the command failed argument extraction.
func (c Command) Malformed() bool { return c.Usage != "" }

// rule pairs an intent with the predicate that selects it. Predicates see
// the trimmed, lower-cased line.
type rule struct {
	intent Intent
	match  func(lower string) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{IntentHelp, func(s string) bool {
		return s == "help" || strings.Contains(s, "tutorial")
	}},
	{IntentHowToSearch, containsAny("how do i search", "how to search")},
	{IntentHowToFilter, containsAny("how do i filter", "how to filter")},
	{IntentTroubleshoot, containsAny("not working", "error", "issue")},
	{IntentExplainFeature, func(s string) bool {
		return strings.Contains(s, "what does") && strings.Contains(s, "button") && strings.Contains(s, "do")
	}},
	{IntentAddBook, hasPrefix(addBookPrefix)},
	{IntentEditBook, hasPrefix(editBookPrefix)},
	{IntentDeleteBook, hasPrefix(deleteBookPrefix)},
}

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

func hasPrefix(prefix string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// Classify returns the intent of line without extracting arguments.
func Classify(line string) Intent {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, r := range rules {
		if r.match(lower) {
			return r.intent
		}
	}
	return IntentUnrecognized
}

// Interpret classifies line and extracts the arguments of its intent.
func Interpret(line string) Command {
	input := strings.TrimSpace(line)
	lower := strings.ToLower(input)

	cmd := Command{Intent: Classify(input), Input: input}
	switch cmd.Intent {
	case IntentExplainFeature:
		cmd.Feature = explainedFeature(lower)
	case IntentAddBook:
		parseAddBook(&cmd, stripPrefix(input, lower, addBookPrefix))
	case IntentEditBook:
		parseEditBook(&cmd, stripPrefix(input, lower, editBookPrefix))
	case IntentDeleteBook:
		parseDeleteBook(&cmd, stripPrefix(input, lower, deleteBookPrefix))
	}
	return cmd
}

func explainedFeature(lower string) Feature {
	switch {
	case strings.Contains(lower, "add book"):
		return FeatureAddBook
	case strings.Contains(lower, "edit"):
		return FeatureEdit
	case strings.Contains(lower, "delete"):
		return FeatureDelete
	default:
		return FeatureGeneric
	}
}

// stripPrefix removes prefix, already matched against lower, from input and
// trims the remainder. Arguments keep their original case unless lowering
// shifted the prefix's byte offsets in input.
func stripPrefix(input, lower, prefix string) string {
	n := len(prefix)
	if len(input) >= n && strings.EqualFold(input[:n], prefix) {
		return strings.TrimSpace(input[n:])
	}
	return strings.TrimSpace(lower[n:])
}

// parseAddBook extracts "Title by Author, Genre[, Rating]".
//
// The title/author split is on every literal "by", so a title containing
// "by" (e.g. "Stand by Me") loses everything after its first "by".
func parseAddBook(cmd *Command, details string) {
	parts := strings.Split(details, ",")
	if len(parts) < 2 {
		cmd.Usage = addBookIncompleteUsage
		return
	}

	titleAuthor := strings.Split(parts[0], "by")
	if len(titleAuthor) < 2 {
		cmd.Usage = addBookUsage
		return
	}

	cmd.Book = booklog.Book{
		Title:  strings.TrimSpace(titleAuthor[0]),
		Author: strings.TrimSpace(titleAuthor[1]),
		Genre:  strings.TrimSpace(parts[1]),
		Rating: booklog.DefaultRating,
	}
	if cmd.Book.Title == "" || cmd.Book.Author == "" {
		cmd.Usage = addBookUsage
		return
	}
	// A present but blank rating stays blank; the store defaults it.
	if len(parts) > 2 {
		cmd.Book.Rating = strings.TrimSpace(parts[2])
	}
}

// parseEditBook extracts exactly five comma-separated fields.
func parseEditBook(cmd *Command, details string) {
	parts := strings.Split(details, ",")
	if len(parts) != editFields {
		cmd.Usage = editBookUsage
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	cmd.OldTitle = parts[0]
	cmd.Book = booklog.Book{
		Title:  parts[1],
		Author: parts[2],
		Genre:  parts[3],
		Rating: parts[4],
	}
	if cmd.Book.Title == "" || cmd.Book.Author == "" {
		cmd.Usage = editBookUsage
	}
}

func parseDeleteBook(cmd *Command, title string) {
	if title == "" {
		cmd.Usage = deleteBookUsage
		return
	}
	cmd.Title = title
}
