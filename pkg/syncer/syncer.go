// Package syncer implements the pull sync: it fetches the remote view of
// articles and feeds, resolves divergence against local state (remote
// wins), reconciles deleted feeds behind the mass-deletion guard and runs
// chunked cleanup of read articles.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedsync/feedsync/pkg/batch"
	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/remote"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/repository.go -pkg mocks -skip-ensure -fmt goimports . Repository
//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote
//go:generate moq -out mocks/logger.go -pkg mocks -skip-ensure -fmt goimports . ConflictLogger

// Store is the in-memory article state consumed and updated by the sync.
type Store interface {
	Get(id int64) (domain.Article, bool)
	Snapshot() []domain.Article
	Insert(a domain.Article)
	AdoptRemote(id int64, st domain.ArticleState, syncTime time.Time, clearLocal bool)
	AdvanceSync(id int64, syncTime time.Time)
	RemoveFeed(feedID int64) int
	Remove(ids []int64)
}

// Repository is the relational store behind the sync.
type Repository interface {
	UpsertFeed(ctx context.Context, f *domain.Feed) error
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	DeleteFeeds(ctx context.Context, ids []int64) error

	UpsertArticle(ctx context.Context, a *domain.Article) error
	UpdateArticleState(ctx context.Context, a domain.Article) error
	ListReadArticleIDs(ctx context.Context) ([]int64, error)
	DeleteArticles(ctx context.Context, ids []int64) error
	IsTombstoned(ctx context.Context, remoteID string) (bool, error)

	SetValue(ctx context.Context, key, value string) error
}

// Remote lists current remote state. No per-change timestamps exist, which
// is why resolution is remote-wins rather than time based.
type Remote interface {
	ListArticles(ctx context.Context) ([]remote.ArticleStatus, error)
	ListFeeds(ctx context.Context) ([]remote.FeedInfo, error)
}

// ConflictLogger records conflicts and session events.
type ConflictLogger interface {
	Conflict(rec domain.ConflictRecord)
	Event(op conflictlog.Operation, details map[string]interface{})
}

// Params holds syncer dependencies and tuning.
type Params struct {
	Store  Store
	Repo   Repository
	Remote Remote
	Log    ConflictLogger
	Guard  *batch.Guard

	Interval   time.Duration // periodic pull sync period
	ChunkSize  int           // bulk delete chunking
	ChunkDelay time.Duration // pause between chunks
}

// Syncer runs periodic and on-demand pull syncs.
type Syncer struct {
	store  Store
	repo   Repository
	remote Remote
	log    ConflictLogger
	guard  *batch.Guard

	interval   time.Duration
	chunkSize  int
	chunkDelay time.Duration

	syncMu sync.Mutex // one pull sync at a time
	wg     sync.WaitGroup
	cancel context.CancelFunc
	now    func() time.Time

	mu          sync.Mutex
	lastSession *domain.SyncSession
}

// New creates a syncer, filling zero params with defaults.
func New(p Params) *Syncer {
	if p.Interval == 0 {
		p.Interval = 15 * time.Minute
	}
	if p.ChunkSize == 0 {
		p.ChunkSize = batch.DefaultChunkSize
	}
	if p.Guard == nil {
		p.Guard = batch.NewGuard(batch.DefaultMassDeletionRatio)
	}
	return &Syncer{
		store:      p.Store,
		repo:       p.Repo,
		remote:     p.Remote,
		log:        p.Log,
		guard:      p.Guard,
		interval:   p.Interval,
		chunkSize:  p.ChunkSize,
		chunkDelay: p.ChunkDelay,
		now:        time.Now,
	}
}

// Start begins the periodic pull sync.
func (s *Syncer) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.SyncNow(ctx); err != nil {
					lgr.Printf("[ERROR] pull sync failed: %v", err)
				}
			}
		}
	}()
	lgr.Printf("[INFO] syncer started, interval %v", s.interval)
}

// Stop terminates the periodic sync.
func (s *Syncer) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// LastSession returns the most recent completed session, nil if none ran.
func (s *Syncer) LastSession() *domain.SyncSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSession
}

// SyncNow runs one pull sync pass and returns its session summary.
func (s *Syncer) SyncNow(ctx context.Context) (*domain.SyncSession, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	session := domain.NewSyncSession(s.now())
	lgr.Printf("[INFO] pull sync %s started", session.ID)

	var remoteArticles []remote.ArticleStatus
	var remoteFeeds []remote.FeedInfo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if remoteArticles, err = s.remote.ListArticles(gctx); err != nil {
			return fmt.Errorf("list remote articles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if remoteFeeds, err = s.remote.ListFeeds(gctx); err != nil {
			return fmt.Errorf("list remote feeds: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Event(conflictlog.OpSyncFailure, map[string]interface{}{
			"syncSessionId": session.ID, "error": err.Error(),
		})
		return nil, err
	}

	feedIDs, err := s.reconcileFeeds(ctx, session, remoteFeeds)
	if err != nil {
		return nil, err
	}

	s.processArticles(ctx, session, remoteArticles, feedIDs)

	if err := s.repo.SetValue(ctx, "last_sync", session.StartedAt.UTC().Format(time.RFC3339)); err != nil {
		lgr.Printf("[WARN] failed to record sync marker: %v", err)
	}

	s.log.Event(conflictlog.OpSyncCompletion, map[string]interface{}{
		"syncSessionId":     session.ID,
		"articlesProcessed": session.ArticlesProcessed,
		"conflictsDetected": session.ConflictsDetected,
		"conflictsByType":   session.ConflictsByType,
	})
	lgr.Printf("[INFO] pull sync %s completed: %d articles, %d conflicts",
		session.ID, session.ArticlesProcessed, session.ConflictsDetected)

	s.mu.Lock()
	s.lastSession = session
	s.mu.Unlock()
	return session, nil
}

// reconcileFeeds upserts remotely known feeds and deletes local feeds no
// longer listed, behind the mass-deletion guard. Returns remote feed id ->
// local feed id.
func (s *Syncer) reconcileFeeds(ctx context.Context, session *domain.SyncSession,
	remoteFeeds []remote.FeedInfo) (map[string]int64, error) {

	feedIDs := make(map[string]int64, len(remoteFeeds))
	remoteKnown := make(map[string]bool, len(remoteFeeds))
	for _, rf := range remoteFeeds {
		f := domain.Feed{RemoteID: rf.RemoteID, Title: rf.Title, URL: rf.URL}
		if err := s.repo.UpsertFeed(ctx, &f); err != nil {
			return nil, fmt.Errorf("upsert feed %s: %w", rf.RemoteID, err)
		}
		feedIDs[rf.RemoteID] = f.ID
		remoteKnown[rf.RemoteID] = true
	}

	localFeeds, err := s.repo.ListFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local feeds: %w", err)
	}

	var missing []int64
	for _, lf := range localFeeds {
		if !remoteKnown[lf.RemoteID] {
			missing = append(missing, lf.ID)
		}
	}
	if len(missing) == 0 {
		return feedIDs, nil
	}

	// absence from one listing is a weak signal, refuse suspicious bulk deletes
	if err := s.guard.CheckSafe(len(localFeeds), len(missing)); err != nil {
		lgr.Printf("[WARN] feed reconciliation skipped for session %s: %v", session.ID, err)
		s.log.Event(conflictlog.OpSyncFailure, map[string]interface{}{
			"syncSessionId": session.ID, "reason": "mass deletion blocked",
			"existing": len(localFeeds), "proposed": len(missing),
		})
		return feedIDs, nil
	}

	// the store mirrors the DB, drop a feed's articles only once its delete
	// chunk is actually committed
	res, err := batch.Process(ctx, missing, s.chunkSize, s.chunkDelay,
		func(ctx context.Context, chunk []int64) error {
			if err := s.repo.DeleteFeeds(ctx, chunk); err != nil {
				return err
			}
			for _, id := range chunk {
				s.store.RemoveFeed(id)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("delete feeds: %w", err)
	}
	lgr.Printf("[INFO] removed %d feeds no longer present remotely (%d/%d chunks ok)",
		res.ProcessedCount, res.SuccessfulChunks, res.TotalChunks)
	return feedIDs, nil
}

// processArticles runs the conflict state machine over the remote article
// listing against one consistent snapshot of local state.
func (s *Syncer) processArticles(ctx context.Context, session *domain.SyncSession,
	remoteArticles []remote.ArticleStatus, feedIDs map[string]int64) {

	byRemoteID := make(map[string]domain.Article)
	for _, a := range s.store.Snapshot() {
		byRemoteID[a.RemoteID] = a
	}
	syncTime := session.StartedAt

	for _, ra := range remoteArticles {
		local, known := byRemoteID[ra.RemoteID]
		if !known {
			s.admitNewArticle(ctx, ra, feedIDs, syncTime)
			session.ArticlesProcessed++
			continue
		}

		remoteState := domain.ArticleState{Read: ra.Read, Starred: ra.Starred}
		decision := Detect(local, remoteState)

		switch decision.Outcome {
		case OutcomeAdopt:
			s.store.AdoptRemote(local.ID, remoteState, syncTime, false)

		case OutcomeInSync:
			s.store.AdvanceSync(local.ID, syncTime)

		case OutcomeConflict:
			rec := domain.ConflictRecord{
				Timestamp:       s.now(),
				SyncSessionID:   session.ID,
				ArticleID:       local.ID,
				FeedID:          local.FeedID,
				ConflictType:    decision.ConflictType,
				LocalValue:      local.State(),
				RemoteValue:     remoteState,
				Resolution:      "remote",
				LastLocalUpdate: local.LastLocalUpdate,
				LastSyncUpdate:  local.LastSyncUpdate,
				Note:            "remote service reports no change timestamps, remote value kept",
			}
			s.log.Conflict(rec)
			session.RecordConflict(decision.ConflictType)
			// discarded local intent is not retried
			s.store.AdoptRemote(local.ID, remoteState, syncTime, true)
		}

		if updated, ok := s.store.Get(local.ID); ok {
			if err := s.repo.UpdateArticleState(ctx, updated); err != nil {
				lgr.Printf("[WARN] failed to persist state of article %d: %v", local.ID, err)
			}
		}
		session.ArticlesProcessed++
	}
}

// admitNewArticle creates a remotely discovered article unless it was
// intentionally deleted here (tombstoned).
func (s *Syncer) admitNewArticle(ctx context.Context, ra remote.ArticleStatus,
	feedIDs map[string]int64, syncTime time.Time) {

	tombstoned, err := s.repo.IsTombstoned(ctx, ra.RemoteID)
	if err != nil {
		lgr.Printf("[WARN] tombstone check failed for %s: %v", ra.RemoteID, err)
		return
	}
	if tombstoned {
		lgr.Printf("[DEBUG] skipping tombstoned article %s", ra.RemoteID)
		return
	}

	feedID, ok := feedIDs[ra.FeedRemoteID]
	if !ok {
		lgr.Printf("[WARN] article %s references unknown feed %s, skipped", ra.RemoteID, ra.FeedRemoteID)
		return
	}

	a := domain.Article{
		RemoteID:       ra.RemoteID,
		FeedID:         feedID,
		Title:          ra.Title,
		Link:           ra.Link,
		Read:           ra.Read,
		Starred:        ra.Starred,
		LastSyncUpdate: &syncTime,
	}
	if err := s.repo.UpsertArticle(ctx, &a); err != nil {
		lgr.Printf("[WARN] failed to store new article %s: %v", ra.RemoteID, err)
		return
	}
	s.store.Insert(a)
}

// CleanupReadArticles deletes read, unstarred articles in chunks, writing
// tombstones so the next sync does not bring them back. This is a
// deliberate user/policy action, so the mass-deletion guard does not apply.
func (s *Syncer) CleanupReadArticles(ctx context.Context) (domain.BatchResult, error) {
	ids, err := s.repo.ListReadArticleIDs(ctx)
	if err != nil {
		return domain.BatchResult{}, fmt.Errorf("list cleanup candidates: %w", err)
	}
	if len(ids) == 0 {
		return domain.BatchResult{}, nil
	}

	res, err := batch.Process(ctx, ids, s.chunkSize, s.chunkDelay,
		func(ctx context.Context, chunk []int64) error {
			if err := s.repo.DeleteArticles(ctx, chunk); err != nil {
				return err
			}
			s.store.Remove(chunk)
			return nil
		})
	if err != nil {
		return domain.BatchResult{}, err
	}

	s.log.Event(conflictlog.OpProcessingMetrics, map[string]interface{}{
		"operation":        "cleanup_read_articles",
		"totalChunks":      res.TotalChunks,
		"successfulChunks": res.SuccessfulChunks,
		"failedChunks":     res.FailedChunks,
		"processedCount":   res.ProcessedCount,
	})
	lgr.Printf("[INFO] cleanup removed %d read articles in %d chunks", res.ProcessedCount, res.TotalChunks)
	return res, nil
}
