package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/queue/mocks"
)

func TestQueue_PersistAndLoad(t *testing.T) {
	p := &MemoryPersister{}

	q := New(10, p, nil)
	_, err := q.Enqueue(1, 100, domain.ActionMarkRead, false)
	require.NoError(t, err)
	_, err = q.Enqueue(2, 100, domain.ActionStar, false)
	require.NoError(t, err)
	require.NoError(t, q.Persist(context.Background()))

	// a fresh queue over the same persister restores the entries
	restored := New(10, p, nil)
	require.NoError(t, restored.Load(context.Background()))
	entries := restored.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ArticleID)
	assert.Equal(t, domain.ActionMarkRead, entries[0].Action)
	assert.Equal(t, domain.ActionStar, entries[1].Action)
}

func TestQueue_Load_EmptyStorage(t *testing.T) {
	q := New(10, &MemoryPersister{}, nil)
	require.NoError(t, q.Load(context.Background()))
	assert.Zero(t, q.Size())
}

func TestQueue_Load_NilPersister(t *testing.T) {
	q := New(10, nil, nil)
	require.NoError(t, q.Load(context.Background()))
	require.NoError(t, q.Persist(context.Background()))
}

func TestQueue_Load_LegacyFormat(t *testing.T) {
	// version 1 persisted a bare JSON array of article ids
	p := &MemoryPersister{}
	require.NoError(t, p.SaveQueue(context.Background(), []byte("[11,12,13]")))

	q := New(10, p, nil)
	require.NoError(t, q.Load(context.Background()))

	entries := q.Entries()
	require.Len(t, entries, 3)
	for i, id := range []int64{11, 12, 13} {
		assert.Equal(t, id, entries[i].ArticleID)
		assert.Equal(t, domain.ActionMarkRead, entries[i].Action, "legacy ids migrate as mark_read")
		assert.NotEmpty(t, entries[i].ID)
	}

	// next persist rewrites the blob in the current envelope format
	require.NoError(t, q.Persist(context.Background()))
	data, err := p.LoadQueue(context.Background())
	require.NoError(t, err)
	var blob persistedQueue
	require.NoError(t, json.Unmarshal(data, &blob))
	assert.Equal(t, formatVersion, blob.Version)
	assert.Len(t, blob.Entries, 3)
}

func TestQueue_Load_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json at all", "{{{"},
		{"wrong shape", `{"foo": "bar"}`},
		{"invalid action in envelope", `{"version":2,"entries":[{"id":"x","articleId":1,"action":"purge"}]}`},
		{"array of strings", `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MemoryPersister{}
			require.NoError(t, p.SaveQueue(context.Background(), []byte(tt.data)))

			q := New(10, p, nil)
			require.NoError(t, q.Load(context.Background()), "corrupt state must not crash the engine")
			assert.Zero(t, q.Size(), "corrupt state is discarded, queue starts empty")
		})
	}
}

func TestQueue_Load_TruncatesToCapacity(t *testing.T) {
	p := &MemoryPersister{}
	big := New(10, p, nil)
	for i := int64(1); i <= 8; i++ {
		_, err := big.Enqueue(i, 100, domain.ActionMarkRead, false)
		require.NoError(t, err)
	}
	require.NoError(t, big.Persist(context.Background()))

	small := New(3, p, nil)
	require.NoError(t, small.Load(context.Background()))
	entries := small.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, int64(6), entries[0].ArticleID, "newest entries are kept when truncating")
}

func TestQueue_Persist_QuotaExceeded(t *testing.T) {
	p := &MemoryPersister{Quota: 10} // any real blob exceeds this
	q := New(10, p, nil)
	_, err := q.Enqueue(1, 100, domain.ActionMarkRead, false)
	require.NoError(t, err)

	require.NoError(t, q.Persist(context.Background()), "quota exhaustion must not fail the caller")
	assert.True(t, q.Degraded(), "queue degrades to memory-only mode")

	// entries are still usable in memory
	assert.Equal(t, 1, q.Size())

	// once storage accepts writes again the degraded flag clears
	p.Quota = 0
	require.NoError(t, q.Persist(context.Background()))
	assert.False(t, q.Degraded())
}

func TestQueue_Load_StorageError(t *testing.T) {
	p := &mocks.PersisterMock{
		LoadQueueFunc: func(context.Context) ([]byte, error) {
			return nil, errors.New("disk read failed")
		},
	}

	q := New(10, p, nil)
	err := q.Load(context.Background())
	require.Error(t, err, "storage errors are not the same as corrupt data")
	assert.Contains(t, err.Error(), "disk read failed")
	assert.Len(t, p.LoadQueueCalls(), 1)
}

func TestQueue_Persist_StorageError(t *testing.T) {
	p := &mocks.PersisterMock{
		SaveQueueFunc: func(context.Context, []byte) error {
			return errors.New("disk write failed")
		},
	}

	q := New(10, p, nil)
	_, err := q.Enqueue(1, 100, domain.ActionMarkRead, false)
	require.NoError(t, err)

	err = q.Persist(context.Background())
	require.Error(t, err, "non-quota storage errors propagate")
	assert.Contains(t, err.Error(), "disk write failed")
	assert.False(t, q.Degraded(), "only quota errors trigger degraded mode")

	calls := p.SaveQueueCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, string(calls[0].Data), `"version":2`)
}

func TestQueue_SaveLoop(t *testing.T) {
	p := &MemoryPersister{}
	q := New(10, p, nil)
	q.Start(context.Background())

	_, err := q.Enqueue(1, 100, domain.ActionMarkRead, false)
	require.NoError(t, err)
	q.Stop() // final persist runs on shutdown

	restored := New(10, p, nil)
	require.NoError(t, restored.Load(context.Background()))
	assert.Equal(t, 1, restored.Size())
}
