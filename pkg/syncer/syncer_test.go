package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsync/feedsync/pkg/batch"
	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/remote"
	"github.com/feedsync/feedsync/pkg/syncer/mocks"
)

// passiveStore is a StoreMock where every mutation is accepted and Get
// reflects nothing special; tests override what they assert on
func passiveStore(articles ...domain.Article) *mocks.StoreMock {
	byID := map[int64]domain.Article{}
	for _, a := range articles {
		byID[a.ID] = a
	}
	var mu sync.Mutex
	return &mocks.StoreMock{
		SnapshotFunc: func() []domain.Article {
			mu.Lock()
			defer mu.Unlock()
			out := make([]domain.Article, 0, len(byID))
			for _, a := range byID {
				out = append(out, a)
			}
			return out
		},
		GetFunc: func(id int64) (domain.Article, bool) {
			mu.Lock()
			defer mu.Unlock()
			a, ok := byID[id]
			return a, ok
		},
		InsertFunc: func(a domain.Article) {
			mu.Lock()
			defer mu.Unlock()
			byID[a.ID] = a
		},
		AdoptRemoteFunc: func(id int64, st domain.ArticleState, syncTime time.Time, clearLocal bool) {
			mu.Lock()
			defer mu.Unlock()
			a := byID[id]
			a.Read, a.Starred = st.Read, st.Starred
			a.LastSyncUpdate = &syncTime
			if clearLocal {
				a.LastLocalUpdate = nil
			}
			byID[id] = a
		},
		AdvanceSyncFunc: func(id int64, syncTime time.Time) {
			mu.Lock()
			defer mu.Unlock()
			a := byID[id]
			a.LastSyncUpdate = &syncTime
			byID[id] = a
		},
		RemoveFeedFunc: func(int64) int { return 0 },
		RemoveFunc:     func([]int64) {},
	}
}

// acceptingRepo upserts assign ids and everything succeeds
func acceptingRepo() *mocks.RepositoryMock {
	var nextID int64 = 100
	var mu sync.Mutex
	return &mocks.RepositoryMock{
		UpsertFeedFunc: func(_ context.Context, f *domain.Feed) error {
			mu.Lock()
			defer mu.Unlock()
			if f.ID == 0 {
				nextID++
				f.ID = nextID
			}
			return nil
		},
		ListFeedsFunc:          func(context.Context) ([]domain.Feed, error) { return nil, nil },
		DeleteFeedsFunc:        func(context.Context, []int64) error { return nil },
		UpsertArticleFunc: func(_ context.Context, a *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			if a.ID == 0 {
				nextID++
				a.ID = nextID
			}
			return nil
		},
		UpdateArticleStateFunc: func(context.Context, domain.Article) error { return nil },
		ListReadArticleIDsFunc: func(context.Context) ([]int64, error) { return nil, nil },
		DeleteArticlesFunc:     func(context.Context, []int64) error { return nil },
		IsTombstonedFunc:       func(context.Context, string) (bool, error) { return false, nil },
		SetValueFunc:           func(context.Context, string, string) error { return nil },
	}
}

// recordingLogger captures conflicts and events
type recordingLogger struct {
	mu        sync.Mutex
	conflicts []domain.ConflictRecord
	events    map[conflictlog.Operation]int
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{events: map[conflictlog.Operation]int{}}
}

func (l *recordingLogger) Conflict(rec domain.ConflictRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conflicts = append(l.conflicts, rec)
}

func (l *recordingLogger) Event(op conflictlog.Operation, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[op]++
}

func (l *recordingLogger) eventCount(op conflictlog.Operation) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.events[op]
}

func remoteWith(feeds []remote.FeedInfo, articles []remote.ArticleStatus) *mocks.RemoteMock {
	return &mocks.RemoteMock{
		ListFeedsFunc:    func(context.Context) ([]remote.FeedInfo, error) { return feeds, nil },
		ListArticlesFunc: func(context.Context) ([]remote.ArticleStatus, error) { return articles, nil },
	}
}

func TestSyncer_SyncNow_NewArticles(t *testing.T) {
	store := passiveStore()
	repo := acceptingRepo()
	log := newRecordingLogger()
	rmt := remoteWith(
		[]remote.FeedInfo{{RemoteID: "f1", Title: "feed", URL: "https://example.com/f1"}},
		[]remote.ArticleStatus{
			{RemoteID: "a1", FeedRemoteID: "f1", Title: "one", Read: true},
			{RemoteID: "a2", FeedRemoteID: "f1", Title: "two"},
		},
	)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: log})
	sess, err := s.SyncNow(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sess.ArticlesProcessed)
	assert.Zero(t, sess.ConflictsDetected)
	assert.Len(t, store.InsertCalls(), 2, "remotely discovered articles are admitted")
	assert.Len(t, repo.UpsertFeedCalls(), 1)
	assert.Equal(t, 1, log.eventCount(conflictlog.OpSyncCompletion))

	// sync marker recorded
	sets := repo.SetValueCalls()
	require.Len(t, sets, 1)
	assert.Equal(t, "last_sync", sets[0].Key)

	// LastSession reflects the completed pass
	assert.Equal(t, sess, s.LastSession())
}

func TestSyncer_SyncNow_RemoteWinsConflict(t *testing.T) {
	localUpdate := time.Now()
	local := domain.Article{
		ID: 7, RemoteID: "a1", FeedID: 101, Read: true,
		LastLocalUpdate: &localUpdate,
	}
	store := passiveStore(local)
	repo := acceptingRepo()
	log := newRecordingLogger()
	rmt := remoteWith(
		[]remote.FeedInfo{{RemoteID: "f1"}},
		[]remote.ArticleStatus{{RemoteID: "a1", FeedRemoteID: "f1", Read: false}},
	)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: log})
	sess, err := s.SyncNow(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, sess.ConflictsDetected)
	assert.Equal(t, 1, sess.ConflictsByType[domain.ConflictRead])

	require.Len(t, log.conflicts, 1)
	rec := log.conflicts[0]
	assert.Equal(t, domain.ConflictRead, rec.ConflictType)
	assert.Equal(t, "remote", rec.Resolution)
	assert.Equal(t, int64(7), rec.ArticleID)
	assert.True(t, rec.LocalValue.Read)
	assert.False(t, rec.RemoteValue.Read)
	assert.Equal(t, sess.ID, rec.SyncSessionID)

	adopts := store.AdoptRemoteCalls()
	require.Len(t, adopts, 1)
	assert.True(t, adopts[0].ClearLocal, "discarded local intent is not retried")
	assert.False(t, adopts[0].St.Read, "remote value wins")

	// resolved state is persisted
	updates := repo.UpdateArticleStateCalls()
	require.Len(t, updates, 1)
	assert.False(t, updates[0].A.Read)
}

func TestSyncer_SyncNow_AdoptAndInSync(t *testing.T) {
	localUpdate := time.Now()
	noChanges := domain.Article{ID: 1, RemoteID: "a1", Read: false}
	matching := domain.Article{ID: 2, RemoteID: "a2", Starred: true, LastLocalUpdate: &localUpdate}

	store := passiveStore(noChanges, matching)
	repo := acceptingRepo()
	log := newRecordingLogger()
	rmt := remoteWith(
		[]remote.FeedInfo{{RemoteID: "f1"}},
		[]remote.ArticleStatus{
			{RemoteID: "a1", FeedRemoteID: "f1", Read: true},    // remote adopted as is
			{RemoteID: "a2", FeedRemoteID: "f1", Starred: true}, // already matching
		},
	)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: log})
	sess, err := s.SyncNow(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sess.ConflictsDetected)
	adopts := store.AdoptRemoteCalls()
	require.Len(t, adopts, 1)
	assert.Equal(t, int64(1), adopts[0].ID)
	assert.False(t, adopts[0].ClearLocal)

	advances := store.AdvanceSyncCalls()
	require.Len(t, advances, 1)
	assert.Equal(t, int64(2), advances[0].ID)
}

func TestSyncer_SyncNow_SkipsTombstoned(t *testing.T) {
	store := passiveStore()
	repo := acceptingRepo()
	repo.IsTombstonedFunc = func(_ context.Context, remoteID string) (bool, error) {
		return remoteID == "deleted", nil
	}
	rmt := remoteWith(
		[]remote.FeedInfo{{RemoteID: "f1"}},
		[]remote.ArticleStatus{
			{RemoteID: "deleted", FeedRemoteID: "f1"},
			{RemoteID: "alive", FeedRemoteID: "f1"},
		},
	)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: newRecordingLogger()})
	_, err := s.SyncNow(context.Background())
	require.NoError(t, err)

	inserts := store.InsertCalls()
	require.Len(t, inserts, 1, "tombstoned articles are not resurrected")
	assert.Equal(t, "alive", inserts[0].A.RemoteID)
}

func TestSyncer_SyncNow_SkipsUnknownFeed(t *testing.T) {
	store := passiveStore()
	rmt := remoteWith(
		[]remote.FeedInfo{{RemoteID: "f1"}},
		[]remote.ArticleStatus{{RemoteID: "a1", FeedRemoteID: "orphaned"}},
	)

	s := New(Params{Store: store, Repo: acceptingRepo(), Remote: rmt, Log: newRecordingLogger()})
	_, err := s.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.InsertCalls())
}

func TestSyncer_SyncNow_FetchFailure(t *testing.T) {
	log := newRecordingLogger()
	rmt := &mocks.RemoteMock{
		ListFeedsFunc:    func(context.Context) ([]remote.FeedInfo, error) { return nil, nil },
		ListArticlesFunc: func(context.Context) ([]remote.ArticleStatus, error) { return nil, errors.New("remote down") },
	}

	s := New(Params{Store: passiveStore(), Repo: acceptingRepo(), Remote: rmt, Log: log})
	_, err := s.SyncNow(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, log.eventCount(conflictlog.OpSyncFailure))
	assert.Nil(t, s.LastSession(), "failed pass does not become the last session")
}

func TestSyncer_ReconcileFeeds_DeletesMissing(t *testing.T) {
	store := passiveStore()
	repo := acceptingRepo()
	repo.ListFeedsFunc = func(context.Context) ([]domain.Feed, error) {
		return []domain.Feed{
			{ID: 1, RemoteID: "f1"},
			{ID: 2, RemoteID: "f2"},
			{ID: 3, RemoteID: "gone"},
		}, nil
	}
	rmt := remoteWith([]remote.FeedInfo{{RemoteID: "f1"}, {RemoteID: "f2"}}, nil)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: newRecordingLogger()})
	_, err := s.SyncNow(context.Background())
	require.NoError(t, err)

	deletes := repo.DeleteFeedsCalls()
	require.Len(t, deletes, 1)
	assert.Equal(t, []int64{3}, deletes[0].Ids)

	removed := store.RemoveFeedCalls()
	require.Len(t, removed, 1)
	assert.Equal(t, int64(3), removed[0].FeedID)
}

func TestSyncer_ReconcileFeeds_KeepsStoreOnFailedChunk(t *testing.T) {
	store := passiveStore()
	repo := acceptingRepo()
	repo.ListFeedsFunc = func(context.Context) ([]domain.Feed, error) {
		return []domain.Feed{
			{ID: 1, RemoteID: "f1"},
			{ID: 2, RemoteID: "f2"},
			{ID: 3, RemoteID: "gone-a"},
			{ID: 4, RemoteID: "gone-b"},
		}, nil
	}
	repo.DeleteFeedsFunc = func(_ context.Context, ids []int64) error {
		if ids[0] == 3 {
			return errors.New("database is locked")
		}
		return nil
	}
	rmt := remoteWith([]remote.FeedInfo{{RemoteID: "f1"}, {RemoteID: "f2"}}, nil)

	// chunk size 1 so each missing feed is its own delete chunk
	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: newRecordingLogger(), ChunkSize: 1})
	_, err := s.SyncNow(context.Background())
	require.NoError(t, err, "a failed delete chunk does not fail the sync")

	removed := store.RemoveFeedCalls()
	require.Len(t, removed, 1, "store mirrors the DB, only committed deletes are applied")
	assert.Equal(t, int64(4), removed[0].FeedID)
}

func TestSyncer_ReconcileFeeds_MassDeletionBlocked(t *testing.T) {
	store := passiveStore()
	repo := acceptingRepo()
	repo.ListFeedsFunc = func(context.Context) ([]domain.Feed, error) {
		// remote lists only 2 of 10 known feeds, deleting 8 would exceed the ratio
		feeds := []domain.Feed{{ID: 1, RemoteID: "f1"}, {ID: 2, RemoteID: "f2"}}
		for i := int64(3); i <= 10; i++ {
			feeds = append(feeds, domain.Feed{ID: i, RemoteID: "gone"})
		}
		return feeds, nil
	}
	log := newRecordingLogger()
	rmt := remoteWith([]remote.FeedInfo{{RemoteID: "f1"}, {RemoteID: "f2"}}, nil)

	s := New(Params{Store: store, Repo: repo, Remote: rmt, Log: log, Guard: batch.NewGuard(0.5)})
	sess, err := s.SyncNow(context.Background())
	require.NoError(t, err, "a blocked reconciliation does not fail the sync")
	require.NotNil(t, sess)

	assert.Empty(t, repo.DeleteFeedsCalls(), "blocked batch deletes nothing")
	assert.Empty(t, store.RemoveFeedCalls())
	assert.Equal(t, 1, log.eventCount(conflictlog.OpSyncFailure))
	assert.Equal(t, 1, log.eventCount(conflictlog.OpSyncCompletion), "sync still completes")
}

func TestSyncer_CleanupReadArticles(t *testing.T) {
	ids := make([]int64, 1097)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	store := passiveStore()
	repo := acceptingRepo()
	repo.ListReadArticleIDsFunc = func(context.Context) ([]int64, error) { return ids, nil }
	log := newRecordingLogger()

	s := New(Params{Store: store, Repo: repo, Remote: remoteWith(nil, nil), Log: log, ChunkSize: 200})
	res, err := s.CleanupReadArticles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, res.TotalChunks)
	assert.Equal(t, 6, res.SuccessfulChunks)
	assert.Equal(t, 1097, res.ProcessedCount, "cleanup processes everything, the deletion guard does not apply here")
	assert.Len(t, repo.DeleteArticlesCalls(), 6)
	assert.Len(t, store.RemoveCalls(), 6)
	assert.Equal(t, 1, log.eventCount(conflictlog.OpProcessingMetrics))
}

func TestSyncer_CleanupReadArticles_NoCandidates(t *testing.T) {
	repo := acceptingRepo()
	log := newRecordingLogger()

	s := New(Params{Store: passiveStore(), Repo: repo, Remote: remoteWith(nil, nil), Log: log})
	res, err := s.CleanupReadArticles(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.TotalChunks)
	assert.Empty(t, repo.DeleteArticlesCalls())
	assert.Zero(t, log.eventCount(conflictlog.OpProcessingMetrics))
}

func TestSyncer_PeriodicStartStop(t *testing.T) {
	rmt := remoteWith(nil, nil)
	s := New(Params{
		Store: passiveStore(), Repo: acceptingRepo(), Remote: rmt, Log: newRecordingLogger(),
		Interval: 20 * time.Millisecond,
	})
	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(rmt.ListArticlesCalls()) >= 2 }, 2*time.Second, 5*time.Millisecond)
	s.Stop()
}
