package lessonforge

import (
	"context"
	"time"
)

// Resource describes a piece of educational web content handed to the
// worksheet generators. It is supplied per request and never persisted.
type Resource struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Grade       string `json:"grade"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`

	// ContentText is the cleaned text extracted from the resource URL.
	// It may be empty, in which case generators fall back to placeholder
	// content rather than failing.
	ContentText string `json:"contentText"`

	Source string `json:"source"`
}

// Extraction is the result of fetching and cleaning a resource URL.
type Extraction struct {
	ContentText string `json:"contentText"`
	Source      string `json:"source"`
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Extractor isolates the densest educational text from rendered HTML,
// flattening structure (headings, lists) into line-prefixed plain text.
type Extractor interface {
	Extract(html string) (string, error)
}

// DomainLimiter rate limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

// ScrapeRecord records one successful content extraction, used for
// monthly usage accounting.
type ScrapeRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	Chars       int       `json:"chars"`
	CreatedAt   time.Time `json:"createdAt"`

	// Content is the extracted text, used only to derive ContentHash.
	// It is never stored.
	Content string `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ScrapeRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "scrape record URL required")
	}
	return nil
}

// ScrapeService records extractions and answers usage queries.
type ScrapeService interface {
	// CreateScrape records a successful extraction.
	CreateScrape(ctx context.Context, rec *ScrapeRecord) error

	// CountScrapesSince returns the number of scrapes recorded at or after
	// the given time.
	CountScrapesSince(ctx context.Context, since time.Time) (int, error)

	// FindScrapes returns the most recent scrape records, newest first.
	FindScrapes(ctx context.Context, limit int) ([]*ScrapeRecord, error)
}
