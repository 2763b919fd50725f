package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/extract"
	"github.com/jbetz/lessonforge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Extract(t *testing.T) {
	t.Parallel()

	t.Run("fetches and processes content", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com/lesson", url)
					return "<html>lesson</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (string, error) {
					return "Heading: Photosynthesis\nPlants convert sunlight into food.", nil
				},
			},
		}

		got, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.NoError(t, err)
		assert.Contains(t, got.ContentText, "=== Photosynthesis ===")
		assert.Equal(t, "example.com", got.Source)
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{}
		_, err := p.Extract(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, lessonforge.EINVALID, lessonforge.ErrorCode(err))
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{}
		_, err := p.Extract(context.Background(), "not-a-url")

		require.Error(t, err)
		assert.Equal(t, lessonforge.EINVALID, lessonforge.ErrorCode(err))
	})

	t.Run("youtube short-circuits without fetching", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					t.Fatal("fetch should not be called for video URLs")
					return "", nil
				},
			},
		}

		got, err := p.Extract(context.Background(), "https://www.youtube.com/watch?v=abc123")

		require.NoError(t, err)
		assert.Equal(t, "YouTube", got.Source)
		assert.Contains(t, got.ContentText, "provide worksheet information manually")
	})

	t.Run("fetch failure maps to unavailable", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", lessonforge.Errorf(lessonforge.EINTERNAL, "browser crashed")
				},
			},
		}

		_, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.Error(t, err)
		assert.Equal(t, lessonforge.EUNAVAILABLE, lessonforge.ErrorCode(err))
		assert.Contains(t, lessonforge.ErrorMessage(err), "could not fetch content")
	})

	t.Run("thin primary extraction uses the fallback", func(t *testing.T) {
		t.Parallel()

		fallbackText := ""
		for len(fallbackText) < 300 {
			fallbackText += "The readability engine found the real lesson content here. "
		}

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) { return "thin", nil },
			},
			Fallback: &mock.Extractor{
				ExtractFn: func(string) (string, error) { return fallbackText, nil },
			},
		}

		got, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.NoError(t, err)
		assert.Contains(t, got.ContentText, "readability engine")
	})

	t.Run("no content at all is not found", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) { return "", nil },
			},
		}

		_, err := p.Extract(context.Background(), "https://example.com/empty")

		require.Error(t, err)
		assert.Equal(t, lessonforge.ENOTFOUND, lessonforge.ErrorCode(err))
	})

	t.Run("monthly limit blocks extraction", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					t.Fatal("fetch should not run once the limit is reached")
					return "", nil
				},
			},
			Scrapes: &mock.ScrapeService{
				CountScrapesSinceFn: func(_ context.Context, since time.Time) (int, error) {
					assert.Equal(t, 1, since.Day())
					return 50, nil
				},
			},
			MonthlyLimit: 50,
		}

		_, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.Error(t, err)
		assert.Equal(t, lessonforge.EINVALID, lessonforge.ErrorCode(err))
		assert.Contains(t, lessonforge.ErrorMessage(err), "monthly scrape limit")
	})

	t.Run("successful extraction is recorded", func(t *testing.T) {
		t.Parallel()

		var recorded *lessonforge.ScrapeRecord
		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) {
					return "Plants convert sunlight into chemical energy.", nil
				},
			},
			Scrapes: &mock.ScrapeService{
				CountScrapesSinceFn: func(context.Context, time.Time) (int, error) { return 0, nil },
				CreateScrapeFn: func(_ context.Context, rec *lessonforge.ScrapeRecord) error {
					recorded = rec
					return nil
				},
			},
			MonthlyLimit: 50,
		}

		got, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, "https://example.com/lesson", recorded.URL)
		assert.Equal(t, "example.com", recorded.Source)
		assert.Equal(t, len(got.ContentText), recorded.Chars)
		assert.Equal(t, got.ContentText, recorded.Content)
	})

	t.Run("record failure does not fail extraction", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) {
					return "Plants convert sunlight into chemical energy.", nil
				},
			},
			Scrapes: &mock.ScrapeService{
				CountScrapesSinceFn: func(context.Context, time.Time) (int, error) { return 0, nil },
				CreateScrapeFn: func(context.Context, *lessonforge.ScrapeRecord) error {
					return lessonforge.Errorf(lessonforge.EINTERNAL, "db locked")
				},
			},
			MonthlyLimit: 50,
		}

		_, err := p.Extract(context.Background(), "https://example.com/lesson")
		require.NoError(t, err)
	})

	t.Run("limiter waits on the URL host", func(t *testing.T) {
		t.Parallel()

		var waited string
		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) {
					return "Plants convert sunlight into chemical energy.", nil
				},
			},
			Limiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					waited = domain
					return nil
				},
			},
		}

		_, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.NoError(t, err)
		assert.Equal(t, "example.com", waited)
	})

	t.Run("raw text is capped before processing", func(t *testing.T) {
		t.Parallel()

		long := ""
		for len(long) <= extract.MaxRawLength {
			long += "word "
		}

		p := &extract.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (string, error) { return long, nil },
			},
		}

		got, err := p.Extract(context.Background(), "https://example.com/lesson")

		require.NoError(t, err)
		assert.LessOrEqual(t, len(got.ContentText), extract.MaxRawLength)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(1)
		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)
	})

	t.Run("different domains do not share limits", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(0.001)

		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
	})

	t.Run("canceled context interrupts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})
}
