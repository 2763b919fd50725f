package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/extract"
	"github.com/jbetz/lessonforge/goquery"
	"github.com/jbetz/lessonforge/rod"
	"github.com/jbetz/lessonforge/sqlite"
	"github.com/jbetz/lessonforge/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ScrapeService lessonforge.ScrapeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
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
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lessonforge"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lessonforge --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LESSONFORGE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ScrapeService = sqlite.NewScrapeService(m.DB)
	deps.DB = m.DB
	deps.Scrapes = m.ScrapeService

	// Only commands that hit the network need a browser.
	needsFetcher := cmd == "serve" || cmd == "extract" ||
		(cmd == "generate" && cli.Generate.URL != "")

	if needsFetcher {
		fetcher, err := rod.NewFetcher(
			rod.WithNavigationTimeout(cli.FetchTimeout),
			rod.WithSettleDelay(cli.Settle),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Pipeline = &extract.Pipeline{
			Fetcher:      rod.NewLoggingFetcher(fetcher, deps.Logger),
			Extractor:    goquery.NewExtractor(),
			Fallback:     trafilatura.NewExtractor(),
			Limiter:      extract.NewDomainLimiter(cli.RPS),
			Scrapes:      m.ScrapeService,
			MonthlyLimit: cli.monthlyLimit(cmd),
			Logger:       deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LESSONFORGE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lessonforge.db"
	}
	dir := filepath.Join(home, ".lessonforge")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lessonforge.db")
}
