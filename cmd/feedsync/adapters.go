package main

import (
	"context"

	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/flusher"
	"github.com/feedsync/feedsync/pkg/queue"
	"github.com/feedsync/feedsync/pkg/repository"
	"github.com/feedsync/feedsync/pkg/syncer"
)

// enqueueNotifier couples the queue with the flusher: every enqueue kicks
// the debounce window. The flusher field is set after construction because
// the flusher itself needs the store built around this adapter.
type enqueueNotifier struct {
	queue   *queue.Queue
	flusher *flusher.Flusher
}

func (e *enqueueNotifier) Enqueue(articleID, feedID int64, action domain.Action, prev bool) (domain.QueueEntry, error) {
	entry, err := e.queue.Enqueue(articleID, feedID, action, prev)
	if e.flusher != nil {
		e.flusher.Notify()
	}
	return entry, err
}

// syncRepo presents the split repositories as the single surface the
// syncer consumes
type syncRepo struct {
	repos *repository.Repositories
}

func (r *syncRepo) UpsertFeed(ctx context.Context, f *domain.Feed) error {
	return r.repos.Feed.UpsertFeed(ctx, f)
}

func (r *syncRepo) ListFeeds(ctx context.Context) ([]domain.Feed, error) {
	return r.repos.Feed.ListFeeds(ctx)
}

func (r *syncRepo) DeleteFeeds(ctx context.Context, ids []int64) error {
	return r.repos.Feed.DeleteFeeds(ctx, ids)
}

func (r *syncRepo) UpsertArticle(ctx context.Context, a *domain.Article) error {
	return r.repos.Article.UpsertArticle(ctx, a)
}

func (r *syncRepo) UpdateArticleState(ctx context.Context, a domain.Article) error {
	return r.repos.Article.UpdateArticleState(ctx, a)
}

func (r *syncRepo) ListReadArticleIDs(ctx context.Context) ([]int64, error) {
	return r.repos.Article.ListReadArticleIDs(ctx)
}

func (r *syncRepo) DeleteArticles(ctx context.Context, ids []int64) error {
	return r.repos.Article.DeleteArticles(ctx, ids)
}

func (r *syncRepo) IsTombstoned(ctx context.Context, remoteID string) (bool, error) {
	return r.repos.Article.IsTombstoned(ctx, remoteID)
}

func (r *syncRepo) SetValue(ctx context.Context, key, value string) error {
	return r.repos.Metadata.SetValue(ctx, key, value)
}

// engine aggregates the running components behind the server.Engine surface
type engine struct {
	queue   *queue.Queue
	flusher *flusher.Flusher
	syncer  *syncer.Syncer
}

func (e *engine) QueueSize() int      { return e.queue.Size() }
func (e *engine) QueueDegraded() bool { return e.queue.Degraded() }
func (e *engine) Online() bool        { return e.flusher.Online() }

func (e *engine) SetOnline(online bool) { e.flusher.SetOnline(online) }
func (e *engine) TriggerFlush()         { e.flusher.TriggerFlush() }

func (e *engine) SyncNow(ctx context.Context) (*domain.SyncSession, error) {
	return e.syncer.SyncNow(ctx)
}

func (e *engine) LastSession() *domain.SyncSession { return e.syncer.LastSession() }

func (e *engine) CleanupReadArticles(ctx context.Context) (domain.BatchResult, error) {
	return e.syncer.CleanupReadArticles(ctx)
}
