package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/booklog"
	"github.com/fwojciec/booklog/catalog"
	"github.com/fwojciec/booklog/chat"
	"github.com/fwojciec/booklog/elastic"
	"github.com/fwojciec/booklog/gemini"
	"github.com/fwojciec/booklog/prometheus"
	bookslog "github.com/fwojciec/booklog/slog"
	"github.com/fwojciec/booklog/sqlite"
	"github.com/peterh/liner"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db and BOOKLOG_DB are unset.
	DBPath string

	// Backends opened by Run. Only the selected one is set.
	DB      *sqlite.DB
	Elastic *elastic.Client

	// Catalog wired by Run, for end-to-end testing.
	Catalog booklog.Catalog

	// Metrics registry, built only for the serve command.
	Metrics *prometheus.Metrics
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Elastic != nil {
		_ = m.Elastic.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("booklog"),
		kong.Description("Keep a personal book catalog and manage it by chat."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'booklog --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	books, err := m.openBooks(ctx, cli, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	if cli.Verbose {
		books = bookslog.NewLoggingBookService(books, logger)
	}
	m.Catalog = catalog.NewStore(books, logger)
	deps.Catalog = m.Catalog

	asker, err := newAsker(ctx, logger, cli.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var bot booklog.Replier = chat.NewBot(m.Catalog, asker, logger)
	if strings.HasPrefix(kongCtx.Command(), "serve") {
		m.Metrics = prometheus.NewMetrics()
		deps.Metrics = m.Metrics
		bot = prometheus.NewReplier(bot, m.Metrics)
	}
	deps.Bot = bot

	if strings.HasPrefix(kongCtx.Command(), "chat") {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)
		deps.Prompter = line
	}

	return kongCtx.Run(deps)
}

// openBooks opens the storage backend selected by --backend.
func (m *Main) openBooks(ctx context.Context, cli *CLI, stderr io.Writer) (booklog.BookService, error) {
	switch cli.Backend {
	case "elastic":
		m.Elastic = elastic.NewClient(cli.ElasticURL, cli.Index)
		if err := m.Elastic.Open(ctx); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ELASTIC_URL to point at a running Elasticsearch node\n")
			return nil, fmt.Errorf("failed to connect to elasticsearch at %q: %w", cli.ElasticURL, err)
		}
		return elastic.NewBookService(m.Elastic), nil
	default:
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BOOKLOG_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewBookService(m.DB), nil
	}
}

// newAsker connects to Gemini when GEMINI_API_KEY is set. Without a key the
// assistant runs with rule-based replies only.
func newAsker(ctx context.Context, logger *slog.Logger, verbose bool) (booklog.Asker, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	var asker booklog.Asker = gemini.NewAsker(client, gemini.DefaultModel, gemini.NewLimiter())
	if verbose {
		asker = bookslog.NewLoggingAsker(asker, logger)
	}
	return asker, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "booklog.db"
	}
	dir := filepath.Join(home, ".booklog")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "booklog.db")
}
