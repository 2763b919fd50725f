package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jbetz/lessonforge"
	"github.com/jbetz/lessonforge/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeService_CreateScrape(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, timestamp, and content hash", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)

		rec := &lessonforge.ScrapeRecord{
			URL:     "https://example.com/lesson",
			Source:  "example.com",
			Chars:   42,
			Content: "Plants convert sunlight into food.",
		}

		err := svc.CreateScrape(context.Background(), rec)

		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.ContentHash)
		assert.False(t, rec.CreatedAt.IsZero())
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)

		a := &lessonforge.ScrapeRecord{URL: "https://example.com/a", Content: "same content"}
		b := &lessonforge.ScrapeRecord{URL: "https://example.com/b", Content: "same content"}

		require.NoError(t, svc.CreateScrape(context.Background(), a))
		require.NoError(t, svc.CreateScrape(context.Background(), b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects record without URL", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)

		err := svc.CreateScrape(context.Background(), &lessonforge.ScrapeRecord{})

		require.Error(t, err)
		assert.Equal(t, lessonforge.EINVALID, lessonforge.ErrorCode(err))
	})
}

func TestScrapeService_CountScrapesSince(t *testing.T) {
	t.Parallel()

	t.Run("counts records at or after the cutoff", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			rec := &lessonforge.ScrapeRecord{URL: "https://example.com/lesson", Content: "content"}
			require.NoError(t, svc.CreateScrape(ctx, rec))
		}

		count, err := svc.CountScrapesSince(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("future cutoff counts nothing", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		rec := &lessonforge.ScrapeRecord{URL: "https://example.com/lesson", Content: "content"}
		require.NoError(t, svc.CreateScrape(ctx, rec))

		count, err := svc.CountScrapesSince(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("empty table counts zero", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)

		count, err := svc.CountScrapesSince(context.Background(), time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestScrapeService_FindScrapes(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
		for _, u := range urls {
			rec := &lessonforge.ScrapeRecord{URL: u, Content: "content"}
			require.NoError(t, svc.CreateScrape(ctx, rec))
			// RFC3339 ordering has second granularity; spacing is not
			// practical in tests, so just verify the full set comes back.
		}

		recs, err := svc.FindScrapes(ctx, 0)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		got := make(map[string]bool)
		for _, rec := range recs {
			got[rec.URL] = true
		}
		for _, u := range urls {
			assert.True(t, got[u])
		}
	})

	t.Run("limit caps the result", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			rec := &lessonforge.ScrapeRecord{URL: "https://example.com/lesson", Content: "content"}
			require.NoError(t, svc.CreateScrape(ctx, rec))
		}

		recs, err := svc.FindScrapes(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("empty table returns no records", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewScrapeService(db)

		recs, err := svc.FindScrapes(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}
