package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/feedsync/feedsync/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (domain.Feed, error) {
	var f dbFeed
	err := r.db.GetContext(ctx, &f, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Feed{}, ErrNotFound
	}
	if err != nil {
		return domain.Feed{}, fmt.Errorf("get feed: %w", err)
	}
	return f.toDomain(), nil
}

// ListFeeds returns all feeds
func (r *FeedRepository) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	var rows []dbFeed
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	feeds := make([]domain.Feed, len(rows))
	for i := range rows {
		feeds[i] = rows[i].toDomain()
	}
	return feeds, nil
}

// CountFeeds returns the number of stored feeds
func (r *FeedRepository) CountFeeds(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM feeds"); err != nil {
		return 0, fmt.Errorf("count feeds: %w", err)
	}
	return count, nil
}

// UpsertFeed inserts the feed or refreshes its title and url
func (r *FeedRepository) UpsertFeed(ctx context.Context, f *domain.Feed) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO feeds (remote_id, title, url)
			VALUES (?, ?, ?)
			ON CONFLICT(remote_id) DO UPDATE SET
				title = excluded.title,
				url = excluded.url
		`
		_, err := r.db.ExecContext(ctx, query, f.RemoteID, f.Title, f.URL)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert feed: %w", err)}
		}

		if f.ID == 0 {
			if err := r.db.GetContext(ctx, &f.ID, "SELECT id FROM feeds WHERE remote_id = ?", f.RemoteID); err != nil {
				return &criticalError{err: fmt.Errorf("resolve feed id: %w", err)}
			}
		}
		return nil
	})
}

// DeleteFeeds removes the given feeds. The articles cascade is a single
// relational operation, not iterated here.
func (r *FeedRepository) DeleteFeeds(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM feeds WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete feeds: %w", err)
	}
	return nil
}
