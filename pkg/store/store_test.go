package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/queue"
	"github.com/feedsync/feedsync/pkg/store/mocks"
)

func acceptAll() *mocks.EnqueuerMock {
	return &mocks.EnqueuerMock{
		EnqueueFunc: func(articleID, feedID int64, action domain.Action, prev bool) (domain.QueueEntry, error) {
			return domain.QueueEntry{ArticleID: articleID, FeedID: feedID, Action: action, Prev: prev}, nil
		},
	}
}

func seeded(enq Enqueuer) *Store {
	s := New(enq)
	s.Seed([]domain.Article{
		{ID: 1, RemoteID: "r1", FeedID: 10, Title: "one"},
		{ID: 2, RemoteID: "r2", FeedID: 10, Title: "two", Read: true},
		{ID: 3, RemoteID: "r3", FeedID: 20, Title: "three", Starred: true},
	})
	return s
}

func TestStore_Apply(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	require.NoError(t, s.Apply(1, domain.ActionMarkRead))

	a, ok := s.Get(1)
	require.True(t, ok)
	assert.True(t, a.Read, "flag flips immediately, before any network call")
	require.NotNil(t, a.LastLocalUpdate)

	calls := enq.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(1), calls[0].ArticleID)
	assert.Equal(t, int64(10), calls[0].FeedID)
	assert.Equal(t, domain.ActionMarkRead, calls[0].Action)
	assert.False(t, calls[0].Prev, "pre-mutation read flag travels with the entry")
}

func TestStore_Apply_UnknownArticle(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	require.Error(t, s.Apply(99, domain.ActionMarkRead))
	assert.Empty(t, enq.EnqueueCalls())
}

func TestStore_Apply_InvalidAction(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)
	require.Error(t, s.Apply(1, domain.Action("nuke")))
}

func TestStore_Apply_EnqueueFailureKeepsLocalState(t *testing.T) {
	enq := &mocks.EnqueuerMock{
		EnqueueFunc: func(_, _ int64, _ domain.Action, _ bool) (domain.QueueEntry, error) {
			return domain.QueueEntry{}, errors.New("queue unavailable")
		},
	}
	s := seeded(enq)

	require.NoError(t, s.Apply(1, domain.ActionStar), "local mutation succeeds even when the queue fails")
	a, _ := s.Get(1)
	assert.True(t, a.Starred)
}

func TestStore_Update(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	read, starred := true, true
	require.NoError(t, s.Update(1, Patch{Read: &read, Starred: &starred}))

	a, _ := s.Get(1)
	assert.True(t, a.Read)
	assert.True(t, a.Starred)
	assert.Len(t, enq.EnqueueCalls(), 2, "one action per changed category")
}

func TestStore_Update_PartialPatch(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	unread := false
	require.NoError(t, s.Update(2, Patch{Read: &unread}))

	a, _ := s.Get(2)
	assert.False(t, a.Read)
	calls := enq.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.ActionMarkUnread, calls[0].Action)
}

func TestStore_BatchUpdate(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	read := true
	s.BatchUpdate([]int64{1, 2, 99, 3}, Patch{Read: &read})

	for _, id := range []int64{1, 2, 3} {
		a, _ := s.Get(id)
		assert.True(t, a.Read, "article %d", id)
	}
	assert.Len(t, enq.EnqueueCalls(), 3, "unknown ids are skipped, not fatal")
}

func TestStore_Revert(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	require.NoError(t, s.Apply(1, domain.ActionMarkRead))
	s.Revert(1, domain.ActionMarkRead, false)

	a, _ := s.Get(1)
	assert.False(t, a.Read, "rejected mutation is rolled back")
	assert.Nil(t, a.LastLocalUpdate, "rolled back article carries no local intent")
}

func TestStore_Revert_StarAction(t *testing.T) {
	s := seeded(acceptAll())
	require.NoError(t, s.Apply(1, domain.ActionStar))
	s.Revert(1, domain.ActionStar, false)

	a, _ := s.Get(1)
	assert.False(t, a.Starred)
}

func TestStore_Revert_IdempotentReMark(t *testing.T) {
	enq := acceptAll()
	s := seeded(enq)

	// article 2 is already read, the user marks it read again
	require.NoError(t, s.Apply(2, domain.ActionMarkRead))
	calls := enq.EnqueueCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Prev, "captured value is the read flag before the mutation")

	s.Revert(2, domain.ActionMarkRead, calls[0].Prev)
	a, _ := s.Get(2)
	assert.True(t, a.Read, "rollback restores the pre-mutation value, not the inverse action")
	assert.Nil(t, a.LastLocalUpdate)
}

func TestStore_Revert_CoalescedIntent(t *testing.T) {
	// real queue so read->unread coalesces into a single pending entry
	q := queue.New(10, nil, nil)
	s := seeded(q)

	require.NoError(t, s.Apply(1, domain.ActionMarkRead))
	require.NoError(t, s.Apply(1, domain.ActionMarkUnread))

	entries := q.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionMarkUnread, entries[0].Action, "latest intent survives")
	assert.False(t, entries[0].Prev, "slot keeps the value from before the first mutation")

	s.Revert(entries[0].ArticleID, entries[0].Action, entries[0].Prev)
	a, _ := s.Get(1)
	assert.False(t, a.Read, "rollback of the surviving entry lands on the original value")
}

func TestStore_AdoptRemote(t *testing.T) {
	s := seeded(acceptAll())
	require.NoError(t, s.Apply(1, domain.ActionMarkRead))

	syncTime := time.Now()
	s.AdoptRemote(1, domain.ArticleState{Read: false, Starred: true}, syncTime, true)

	a, _ := s.Get(1)
	assert.False(t, a.Read, "remote value replaces local")
	assert.True(t, a.Starred)
	assert.Nil(t, a.LastLocalUpdate, "clearLocal drops the discarded intent")
	require.NotNil(t, a.LastSyncUpdate)
	assert.Equal(t, syncTime, *a.LastSyncUpdate)
}

func TestStore_AdoptRemote_KeepLocal(t *testing.T) {
	s := seeded(acceptAll())
	require.NoError(t, s.Apply(1, domain.ActionMarkRead))

	s.AdoptRemote(1, domain.ArticleState{Read: true}, time.Now(), false)
	a, _ := s.Get(1)
	assert.NotNil(t, a.LastLocalUpdate)
}

func TestStore_AdvanceSync(t *testing.T) {
	s := seeded(acceptAll())
	syncTime := time.Now()
	s.AdvanceSync(2, syncTime)

	a, _ := s.Get(2)
	assert.True(t, a.Read, "flags untouched")
	require.NotNil(t, a.LastSyncUpdate)
	assert.Equal(t, syncTime, *a.LastSyncUpdate)
}

func TestStore_RemoveFeed(t *testing.T) {
	s := seeded(acceptAll())
	removed := s.RemoveFeed(10)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get(3)
	assert.True(t, ok, "articles of other feeds survive")
}

func TestStore_Remove(t *testing.T) {
	s := seeded(acceptAll())
	s.Remove([]int64{1, 3})
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(2)
	assert.True(t, ok)
}

func TestStore_Snapshot_IsCopy(t *testing.T) {
	s := seeded(acceptAll())
	snap := s.Snapshot()
	require.Len(t, snap, 3)

	// mutating the store after the snapshot does not change it
	require.NoError(t, s.Apply(1, domain.ActionMarkRead))
	for _, a := range snap {
		if a.ID == 1 {
			assert.False(t, a.Read)
		}
	}
}
