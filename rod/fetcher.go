// Package rod implements page fetching with a headless Chrome browser.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jbetz/lessonforge"
)

// Ensure Fetcher implements lessonforge.Fetcher at compile time.
var _ lessonforge.Fetcher = (*Fetcher)(nil)

// Defaults for fetch behavior.
const (
	DefaultNavigationTimeout = 15 * time.Second
	DefaultSettleDelay       = 2 * time.Second

	// DefaultMaxPages is the number of pages fetched before the browser is
	// recycled. Chrome accumulates memory under sustained load and never
	// returns to its baseline, so a periodic restart keeps usage bounded.
	DefaultMaxPages = 75
)

// DefaultUserAgent identifies fetches as a desktop Chrome browser. Many
// educational sites serve stripped-down or blocked pages to headless agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It waits for dynamic content to settle before reading the DOM, and recycles
// the underlying browser after maxPages fetches.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	navigationTimeout time.Duration
	settleDelay       time.Duration
	userAgent         string
	maxPages          int64

	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	closed    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavigationTimeout sets the per-page navigation timeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.navigationTimeout = d }
}

// WithSettleDelay sets how long to wait after load for dynamic content.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.settleDelay = d }
}

// WithUserAgent overrides the User-Agent presented to fetched sites.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxPages sets the number of pages fetched before browser recycling.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) { f.maxPages = n }
}

// NewFetcher creates a Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		navigationTimeout: DefaultNavigationTimeout,
		settleDelay:       DefaultSettleDelay,
		userAgent:         DefaultUserAgent,
		maxPages:          DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.launchBrowser(); err != nil {
		return nil, err
	}

	return f, nil
}

// Fetch navigates to the URL, waits for the page to load and settle, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquireBrowser()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.navigationTimeout)

	if f.userAgent != "" {
		override := proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(&override); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Give client-side rendering a moment to finish.
	if f.settleDelay > 0 {
		select {
		case <-time.After(f.settleDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	f.pageCount++
	f.mu.Unlock()

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.closeBrowser()
}

// acquireBrowser returns the current browser, recycling it first if the page
// count has reached maxPages.
func (f *Fetcher) acquireBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, lessonforge.Errorf(lessonforge.EINVALID, "fetcher is closed")
	}

	if f.pageCount >= f.maxPages {
		f.recycleBrowser()
	}

	return f.browser, nil
}

// launchBrowser starts a new browser instance with stability flags.
// Must be called with mu held.
func (f *Fetcher) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (f *Fetcher) closeBrowser() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one. If launching
// the new browser fails, the old browser is kept.
// Must be called with mu held.
func (f *Fetcher) recycleBrowser() {
	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchBrowser(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	f.pageCount = 0
}
