package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/extract"
	"github.com/jbetz/lessonforge/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Scrapes  lessonforge.ScrapeService
	Pipeline *extract.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string        `help:"SQLite database path" env:"LESSONFORGE_DB"`
	FetchTimeout time.Duration `default:"15s" help:"Browser navigation timeout"`
	Settle       time.Duration `default:"2s" help:"Wait after page load for dynamic content"`
	RPS          float64       `default:"1" help:"Max fetches per second per domain"`

	Serve    ServeCmd    `cmd:"" help:"Run the worksheet API server"`
	Extract  ExtractCmd  `cmd:"" help:"Extract educational content from a URL"`
	Generate GenerateCmd `cmd:"" help:"Generate a worksheet"`
	Types    TypesCmd    `cmd:"" help:"Recommend worksheet types for a subject and grade"`
}

// monthlyLimit returns the scrape cap configured for the command.
func (c *CLI) monthlyLimit(cmd string) int {
	if cmd == "serve" {
		return c.Serve.MonthlyLimit
	}
	return 0
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr         string `default:":4000" help:"HTTP listen address"`
	MonthlyLimit int    `default:"50" help:"Monthly scrape cap (0 disables)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Resource URL"`
	JSON bool   `help:"Print the extraction as JSON"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Type      string `arg:"" help:"Worksheet type (see 'lessonforge types')"`
	Child     string `short:"c" required:"" help:"Child name printed on the worksheet"`
	Grade     string `short:"g" required:"" help:"Grade level, e.g. '3rd Grade'"`
	Title     string `short:"t" help:"Resource title"`
	Subject   string `short:"s" help:"Resource subject"`
	URL       string `short:"u" help:"Resource URL to extract content from"`
	Out       string `short:"o" help:"Write a PDF to this path instead of JSON to stdout"`
	AnswerKey bool   `help:"Also emit the answer key"`
}

// TypesCmd is the "types" subcommand.
type TypesCmd struct {
	Subject string `arg:"" help:"Subject, e.g. Math"`
	Grade   string `arg:"" help:"Grade level, e.g. '3rd Grade'"`
}
