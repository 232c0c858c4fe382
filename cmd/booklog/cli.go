package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/booklog"
	"github.com/fwojciec/booklog/prometheus"
)

// Prompter reads interactive input one line at a time.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  booklog.Catalog
	Bot      booklog.Replier
	Metrics  *prometheus.Metrics
	Prompter Prompter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB         string `name:"db" env:"BOOKLOG_DB" help:"SQLite database path (default ~/.booklog/booklog.db)"`
	Backend    string `enum:"sqlite,elastic" default:"sqlite" env:"BOOKLOG_BACKEND" help:"Storage backend (sqlite, elastic)"`
	ElasticURL string `name:"elastic-url" default:"http://localhost:9200" env:"ELASTIC_URL" help:"Elasticsearch URL"`
	Index      string `default:"books" help:"Elasticsearch index"`
	Verbose    bool   `short:"v" help:"Log storage and model calls"`

	Add    AddCmd    `cmd:"" help:"Add a book"`
	List   ListCmd   `cmd:"" help:"List books"`
	Edit   EditCmd   `cmd:"" help:"Edit a book"`
	Delete DeleteCmd `cmd:"" help:"Delete a book"`
	Chat   ChatCmd   `cmd:"" help:"Talk to the catalog assistant"`
	Serve  ServeCmd  `cmd:"" help:"Serve the JSON API over HTTP"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title  string `arg:"" help:"Book title"`
	Author string `arg:"" help:"Book author"`
	Genre  string `short:"g" help:"Book genre"`
	Rating string `short:"r" help:"Book rating (default N/A)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Search string `short:"s" help:"Match title or author (case-insensitive)"`
	Genre  string `short:"g" help:"Match genre exactly"`
	Sort   string `enum:"none,title,author,genre" default:"none" help:"Sort by title, author or genre"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	ID     string `arg:"" help:"Book ID"`
	Title  string `help:"New title"`
	Author string `help:"New author"`
	Genre  string `help:"New genre"`
	Rating string `help:"New rating"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Book ID"`
	Force bool   `help:"Confirm deletion"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"BOOKLOG_ADDR" help:"Listen address"`
}
