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

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	var a dbArticle
	err := r.db.GetContext(ctx, &a, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, ErrNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("get article: %w", err)
	}
	return a.toDomain(), nil
}

// GetArticleByRemoteID retrieves an article by its remote identifier
func (r *ArticleRepository) GetArticleByRemoteID(ctx context.Context, remoteID string) (domain.Article, error) {
	var a dbArticle
	err := r.db.GetContext(ctx, &a, "SELECT * FROM articles WHERE remote_id = ?", remoteID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, ErrNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("get article by remote id: %w", err)
	}
	return a.toDomain(), nil
}

// ListArticles returns all articles
func (r *ArticleRepository) ListArticles(ctx context.Context) ([]domain.Article, error) {
	var rows []dbArticle
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM articles ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].toDomain()
	}
	return articles, nil
}

// ListReadArticleIDs returns ids of read, unstarred articles, the cleanup
// candidates. Starred articles are kept regardless of read state.
func (r *ArticleRepository) ListReadArticleIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids,
		"SELECT id FROM articles WHERE is_read = 1 AND is_starred = 0 ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list read articles: %w", err)
	}
	return ids, nil
}

// CountArticles returns the number of stored articles
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// UpsertArticle inserts the article or refreshes its remote-sourced fields.
// Local state columns are only set on insert; flag changes go through
// UpdateArticleState so a sync upsert cannot clobber pending local intent.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, a *domain.Article) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (remote_id, feed_id, title, link, is_read, is_starred, last_sync_update)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(remote_id) DO UPDATE SET
				feed_id = excluded.feed_id,
				title = excluded.title,
				link = excluded.link,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, a.RemoteID, a.FeedID, a.Title, a.Link, a.Read, a.Starred, a.LastSyncUpdate)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert article: %w", err)}
		}

		if a.ID == 0 {
			if err := r.db.GetContext(ctx, &a.ID, "SELECT id FROM articles WHERE remote_id = ?", a.RemoteID); err != nil {
				return &criticalError{err: fmt.Errorf("resolve article id: %w", err)}
			}
		}
		return nil
	})
}

// UpdateArticleState persists the article's flags and sync timestamps
func (r *ArticleRepository) UpdateArticleState(ctx context.Context, a domain.Article) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE articles
			SET is_read = ?, is_starred = ?, last_local_update = ?, last_sync_update = ?, updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, a.Read, a.Starred, a.LastLocalUpdate, a.LastSyncUpdate, a.ID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update article state: %w", err)}
		}
		return nil
	})
}

// DeleteArticles removes the given articles and writes tombstones so the
// next pull sync does not resurrect them. One transaction per call; callers
// chunk the id list.
func (r *ArticleRepository) DeleteArticles(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query, args, err := sqlx.In(
		`INSERT OR IGNORE INTO deleted_articles (remote_id, feed_id)
		 SELECT remote_id, feed_id FROM articles WHERE id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("build tombstone query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write tombstones: %w", err)
	}

	query, args, err = sqlx.In("DELETE FROM articles WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete articles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsTombstoned reports whether the remote id was intentionally deleted
func (r *ArticleRepository) IsTombstoned(ctx context.Context, remoteID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM deleted_articles WHERE remote_id = ?)", remoteID)
	if err != nil {
		return false, fmt.Errorf("check tombstone: %w", err)
	}
	return exists, nil
}
