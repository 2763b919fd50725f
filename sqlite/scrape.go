package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jbetz/lessonforge"
)

// Compile-time interface verification.
var _ lessonforge.ScrapeService = (*ScrapeService)(nil)

// ScrapeService implements lessonforge.ScrapeService using SQLite.
type ScrapeService struct {
	db *DB
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(db *DB) *ScrapeService {
	return &ScrapeService{db: db}
}

// hashContent computes the xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateScrape records a successful extraction. The record's ID, timestamp,
// and content hash are assigned here; the content itself is not stored.
func (s *ScrapeService) CreateScrape(ctx context.Context, rec *lessonforge.ScrapeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	if rec.ContentHash == "" {
		rec.ContentHash = hashContent(rec.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrapes (id, url, source, content_hash, chars, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Source, rec.ContentHash, rec.Chars,
		rec.CreatedAt.Format(time.RFC3339))

	return err
}

// CountScrapesSince returns the number of scrapes recorded at or after the
// given time.
func (s *ScrapeService) CountScrapesSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM scrapes WHERE created_at >= ?
	`, since.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindScrapes returns the most recent scrape records, newest first.
func (s *ScrapeService) FindScrapes(ctx context.Context, limit int) ([]*lessonforge.ScrapeRecord, error) {
	query := `
		SELECT id, url, source, content_hash, chars, created_at
		FROM scrapes
		ORDER BY created_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*lessonforge.ScrapeRecord
	for rows.Next() {
		var rec lessonforge.ScrapeRecord
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Source, &rec.ContentHash, &rec.Chars, &createdAt); err != nil {
			return nil, err
		}

		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
