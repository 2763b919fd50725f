// Package extract orchestrates fetching and content extraction for resource
// URLs.
package extract

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jbetz/lessonforge"
)

// MaxRawLength caps raw extracted text before cleaning. Rendered pages can
// carry hundreds of kilobytes of text; only the head is useful for
// worksheet generation.
const MaxRawLength = 15000

// minContentLength is the threshold below which the primary extraction is
// considered too thin and the fallback extractor runs.
const minContentLength = 200

// youtubePlaceholder is returned for video URLs that have no extractable
// lesson text.
const youtubePlaceholder = "YouTube video content - please provide worksheet information manually."

// Pipeline fetches a resource URL, extracts its educational content, and
// cleans it for worksheet generation. The zero value is not usable; Fetcher
// and Extractor are required, everything else is optional.
type Pipeline struct {
	Fetcher   lessonforge.Fetcher
	Extractor lessonforge.Extractor

	// Fallback runs when the primary extractor finds too little text.
	Fallback lessonforge.Extractor

	// Limiter throttles requests per domain when set.
	Limiter lessonforge.DomainLimiter

	// Scrapes records successful extractions and enforces MonthlyLimit
	// when set.
	Scrapes      lessonforge.ScrapeService
	MonthlyLimit int

	Logger *slog.Logger
}

// Extract fetches the URL and returns its cleaned content text together with
// the source label. Video URLs short-circuit to a placeholder without
// fetching.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (*lessonforge.Extraction, error) {
	if rawURL == "" {
		return nil, lessonforge.Errorf(lessonforge.EINVALID, "URL is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, lessonforge.Errorf(lessonforge.EINVALID, "invalid URL: %s", rawURL)
	}

	if isYouTube(u.Host) {
		return &lessonforge.Extraction{
			ContentText: youtubePlaceholder,
			Source:      "YouTube",
		}, nil
	}

	if err := p.checkMonthlyLimit(ctx); err != nil {
		return nil, err
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, lessonforge.Errorf(lessonforge.EUNAVAILABLE, "could not fetch content from URL: %v", err)
	}

	text, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	// Thin results usually mean the DOM cascade missed the content area;
	// hand the raw HTML to the readability fallback instead.
	if len(text) < minContentLength && p.Fallback != nil {
		if fallbackText, err := p.Fallback.Extract(html); err == nil && len(fallbackText) > len(text) {
			text = fallbackText
		}
	}

	if text == "" {
		return nil, lessonforge.Errorf(lessonforge.ENOTFOUND, "no extractable content found at URL: %s", rawURL)
	}

	text = lessonforge.TruncateText(text, MaxRawLength)

	processed := lessonforge.ProcessContent(text)

	p.recordScrape(ctx, rawURL, u.Host, processed)

	return &lessonforge.Extraction{
		ContentText: processed,
		Source:      u.Host,
	}, nil
}

// Close releases the underlying fetcher.
func (p *Pipeline) Close() error {
	return p.Fetcher.Close()
}

// checkMonthlyLimit rejects the extraction when the scrape count for the
// current calendar month has reached the configured cap.
func (p *Pipeline) checkMonthlyLimit(ctx context.Context) error {
	if p.Scrapes == nil || p.MonthlyLimit <= 0 {
		return nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	count, err := p.Scrapes.CountScrapesSince(ctx, monthStart)
	if err != nil {
		return err
	}
	if count >= p.MonthlyLimit {
		return lessonforge.Errorf(lessonforge.EINVALID, "monthly scrape limit reached (%d)", p.MonthlyLimit)
	}
	return nil
}

// recordScrape stores a usage record for a successful extraction. Failures
// are logged and otherwise ignored; accounting must not break extraction.
func (p *Pipeline) recordScrape(ctx context.Context, rawURL, host, content string) {
	if p.Scrapes == nil {
		return
	}

	rec := &lessonforge.ScrapeRecord{
		URL:     rawURL,
		Source:  host,
		Chars:   len(content),
		Content: content,
	}
	if err := p.Scrapes.CreateScrape(ctx, rec); err != nil && p.Logger != nil {
		p.Logger.Error("record scrape", "url", rawURL, "err", err)
	}
}

func isYouTube(host string) bool {
	host = strings.ToLower(host)
	return strings.Contains(host, "youtube.com") || strings.Contains(host, "youtu.be")
}
