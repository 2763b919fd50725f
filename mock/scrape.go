package mock

import (
	"context"
	"time"

	"github.com/jbetz/lessonforge"
)

var _ lessonforge.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of lessonforge.ScrapeService.
type ScrapeService struct {
	CreateScrapeFn      func(ctx context.Context, rec *lessonforge.ScrapeRecord) error
	CountScrapesSinceFn func(ctx context.Context, since time.Time) (int, error)
	FindScrapesFn       func(ctx context.Context, limit int) ([]*lessonforge.ScrapeRecord, error)
}

func (s *ScrapeService) CreateScrape(ctx context.Context, rec *lessonforge.ScrapeRecord) error {
	return s.CreateScrapeFn(ctx, rec)
}

func (s *ScrapeService) CountScrapesSince(ctx context.Context, since time.Time) (int, error) {
	return s.CountScrapesSinceFn(ctx, since)
}

func (s *ScrapeService) FindScrapes(ctx context.Context, limit int) ([]*lessonforge.ScrapeRecord, error) {
	return s.FindScrapesFn(ctx, limit)
}
