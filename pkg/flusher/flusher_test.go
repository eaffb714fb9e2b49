package flusher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/flusher/mocks"
	"github.com/feedsync/feedsync/pkg/queue"
	"github.com/feedsync/feedsync/pkg/remote"
)

// eventRecorder captures flush events for assertions
type eventRecorder struct {
	mu     sync.Mutex
	events []conflictlog.Operation
}

func (r *eventRecorder) Event(op conflictlog.Operation, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, op)
}

func (r *eventRecorder) has(op conflictlog.Operation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == op {
			return true
		}
	}
	return false
}

// knownStore resolves every article id to a remote id
func knownStore() *mocks.StateStoreMock {
	return &mocks.StateStoreMock{
		GetFunc: func(id int64) (domain.Article, bool) {
			return domain.Article{ID: id, RemoteID: "r" + string(rune('0'+id%10)), FeedID: 1}, true
		},
		RevertFunc: func(int64, domain.Action, bool) {},
	}
}

// countingRemote records batches and returns err for each call
type countingRemote struct {
	mu      sync.Mutex
	batches [][]remote.ActionItem
	err     error
}

func (c *countingRemote) ApplyActions(_ context.Context, items []remote.ActionItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.batches = append(c.batches, items)
	return nil
}

func (c *countingRemote) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}

func (c *countingRemote) batch(i int) []remote.ActionItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batches[i]
}

func TestFlusher_DebounceConvergence(t *testing.T) {
	q := queue.New(100, nil, nil)
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: 50 * time.Millisecond, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})
	f.Start(context.Background())
	defer f.Stop()

	// a burst of rapid marks converges to a single batch write
	for i := int64(1); i <= 10; i++ {
		_, err := q.Enqueue(i, 1, domain.ActionMarkRead, false)
		require.NoError(t, err)
		f.Notify()
	}

	require.Eventually(t, func() bool { return rmt.calls() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, rmt.batch(0), 10, "all pending mutations go out in one batch")
	assert.Zero(t, q.Size())

	// quiet period, no extra calls
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, rmt.calls())
}

func TestFlusher_ThresholdBypassesDebounce(t *testing.T) {
	q := queue.New(100, nil, nil)
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: 10 * time.Second, Threshold: 5, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})
	f.Start(context.Background())
	defer f.Stop()

	for i := int64(1); i <= 5; i++ {
		_, err := q.Enqueue(i, 1, domain.ActionStar, false)
		require.NoError(t, err)
		f.Notify()
	}

	require.Eventually(t, func() bool { return rmt.calls() >= 1 }, 2*time.Second, 5*time.Millisecond,
		"reaching the threshold flushes without waiting out the debounce")
	assert.Zero(t, q.Size())
}

func TestFlusher_TriggerFlush(t *testing.T) {
	q := queue.New(100, nil, nil)
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: 10 * time.Second, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})
	f.Start(context.Background())
	defer f.Stop()

	_, err := q.Enqueue(1, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)
	f.TriggerFlush()

	require.Eventually(t, func() bool { return rmt.calls() == 1 }, 2*time.Second, 5*time.Millisecond)
}

func TestFlusher_OfflineThenReconnect(t *testing.T) {
	q := queue.New(100, nil, nil)
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: 20 * time.Millisecond, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})
	f.Start(context.Background())
	defer f.Stop()

	f.SetOnline(false)
	require.Eventually(t, func() bool { return !f.Online() }, time.Second, 5*time.Millisecond)

	for i := int64(1); i <= 3; i++ {
		_, err := q.Enqueue(i, 1, domain.ActionMarkRead, false)
		require.NoError(t, err)
		f.Notify()
	}

	// offline: nothing goes out, mutations accumulate
	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, rmt.calls())
	assert.Equal(t, 3, q.Size())

	// reconnect flushes without any user action
	f.SetOnline(true)
	require.Eventually(t, func() bool { return rmt.calls() >= 1 && q.Size() == 0 }, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, rmt.batch(0), 3)
}

func TestFlusher_StopFlushesPending(t *testing.T) {
	q := queue.New(100, nil, nil)
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: 10 * time.Second, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})
	f.Start(context.Background())

	_, err := q.Enqueue(1, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)
	f.Stop() // shutdown drains the queue best effort

	assert.Equal(t, 1, rmt.calls())
	assert.Zero(t, q.Size())
}

func TestFlusher_RollbackOnRejection(t *testing.T) {
	q := queue.New(100, nil, nil)
	_, err := q.Enqueue(1, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)
	_, err = q.Enqueue(2, 1, domain.ActionStar, true)
	require.NoError(t, err)

	store := knownStore()
	rec := &eventRecorder{}
	f := New(Params{
		Queue: q, Store: store, Log: rec,
		Remote: &countingRemote{err: &remote.RejectedError{Status: 422, Reason: "unknown ids"}},
		Debounce: time.Second, Threshold: 200, ChunkSize: 200, MaxAttempts: 3,
		RetryBaseDelay: time.Millisecond,
	})

	f.flushAll(context.Background())

	reverts := store.RevertCalls()
	require.Len(t, reverts, 2, "every entry of the rejected batch is rolled back")
	assert.Equal(t, int64(1), reverts[0].ID)
	assert.Equal(t, domain.ActionMarkRead, reverts[0].Action)
	assert.False(t, reverts[0].Prev)
	assert.Equal(t, int64(2), reverts[1].ID)
	assert.True(t, reverts[1].Prev, "rollback receives the captured pre-mutation value")
	assert.Zero(t, q.Size(), "rejected entries are not retried")
	assert.True(t, rec.has(conflictlog.OpPermanentFailure))
}

func TestFlusher_TransientFailureRequeues(t *testing.T) {
	q := queue.New(100, nil, nil)
	_, err := q.Enqueue(1, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)

	f := New(Params{
		Queue: q, Store: knownStore(),
		Remote: &countingRemote{err: &remote.TransientError{Status: 503}},
		Debounce: time.Second, Threshold: 200, ChunkSize: 200, MaxAttempts: 2,
		RetryBaseDelay: time.Millisecond,
	})

	f.flushAll(context.Background())

	entries := q.Entries()
	require.Len(t, entries, 1, "transiently failed entries return to the queue")
	assert.Equal(t, 1, entries[0].Attempts)
}

func TestFlusher_DropAfterMaxAttempts(t *testing.T) {
	q := queue.New(100, nil, nil)
	rec := &eventRecorder{}
	f := New(Params{
		Queue: q, Store: knownStore(), Log: rec,
		Remote: &countingRemote{},
		Debounce: time.Second, Threshold: 200, ChunkSize: 200, MaxAttempts: 3,
		RetryBaseDelay: time.Millisecond,
	})

	f.requeue([]domain.QueueEntry{
		{ID: "e1", ArticleID: 1, Action: domain.ActionMarkRead, Attempts: 2},
		{ID: "e2", ArticleID: 2, Action: domain.ActionStar, Attempts: 0},
	}, &remote.TransientError{Status: 500})

	entries := q.Entries()
	require.Len(t, entries, 1, "exhausted entry is dropped, fresh one kept")
	assert.Equal(t, int64(2), entries[0].ArticleID)
	assert.True(t, rec.has(conflictlog.OpPermanentFailure))
}

func TestFlusher_SkipsUnknownArticles(t *testing.T) {
	q := queue.New(100, nil, nil)
	_, err := q.Enqueue(1, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)
	_, err = q.Enqueue(2, 1, domain.ActionMarkRead, false)
	require.NoError(t, err)

	store := &mocks.StateStoreMock{
		GetFunc: func(id int64) (domain.Article, bool) {
			if id == 1 {
				return domain.Article{ID: 1, RemoteID: "r1"}, true
			}
			return domain.Article{}, false // unknown locally, nothing to submit
		},
	}
	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: store, Remote: rmt,
		Debounce: time.Second, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond,
	})

	f.flushAll(context.Background())

	require.Equal(t, 1, rmt.calls())
	require.Len(t, rmt.batch(0), 1)
	assert.Equal(t, "r1", rmt.batch(0)[0].RemoteID)
}

func TestFlusher_ChunkedFlush(t *testing.T) {
	q := queue.New(100, nil, nil)
	for i := int64(1); i <= 25; i++ {
		_, err := q.Enqueue(i, 1, domain.ActionMarkRead, false)
		require.NoError(t, err)
	}

	rmt := &countingRemote{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: rmt,
		Debounce: time.Second, Threshold: 200, ChunkSize: 10,
		RetryBaseDelay: time.Millisecond,
	})

	f.flushAll(context.Background())

	require.Equal(t, 3, rmt.calls(), "25 entries at chunk size 10 need 3 calls")
	assert.Len(t, rmt.batch(0), 10)
	assert.Len(t, rmt.batch(2), 5)
	assert.Zero(t, q.Size())
}

func TestFlusher_HealthEvents(t *testing.T) {
	q := queue.New(100, nil, nil)
	rec := &eventRecorder{}
	f := New(Params{
		Queue: q, Store: knownStore(), Remote: &countingRemote{}, Log: rec,
		Debounce: 10 * time.Second, Threshold: 200, ChunkSize: 200,
		RetryBaseDelay: time.Millisecond, HealthInterval: 10 * time.Millisecond,
	})
	f.Start(context.Background())
	defer f.Stop()

	require.Eventually(t, func() bool { return rec.has(conflictlog.OpHealthCheck) }, 2*time.Second, 5*time.Millisecond)
}

func TestFlusher_Defaults(t *testing.T) {
	f := New(Params{Queue: queue.New(10, nil, nil), Store: knownStore(), Remote: &countingRemote{}})
	assert.Equal(t, DefaultDebounce, f.debounce)
	assert.Equal(t, DefaultThreshold, f.threshold)
	assert.Equal(t, DefaultChunkSize, f.chunkSize)
	assert.Equal(t, DefaultMaxAttempts, f.maxAttempts)
	assert.True(t, f.Online(), "engine starts assuming connectivity")
}
