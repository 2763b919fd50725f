package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbetz/lessonforge"
)

// Ensure LoggingFetcher implements lessonforge.Fetcher.
var _ lessonforge.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher reports each page fetch so scrape activity shows up in the
// pipeline logs alongside extraction events.
type LoggingFetcher struct {
	fetcher lessonforge.Fetcher
	logger  *slog.Logger
}

// NewLoggingFetcher wraps fetcher with outcome logging.
func NewLoggingFetcher(fetcher lessonforge.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{fetcher: fetcher, logger: logger}
}

// Fetch delegates to the underlying fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()

	html, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("page fetch failed",
			"url", url,
			"elapsed", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	f.logger.Info("page fetched",
		"url", url,
		"htmlChars", len(html),
		"elapsed", time.Since(begin),
	)
	return html, nil
}

// Close shuts down the underlying fetcher.
func (f *LoggingFetcher) Close() error {
	if err := f.fetcher.Close(); err != nil {
		f.logger.Error("browser close failed", "err", err)
		return err
	}
	return nil
}
