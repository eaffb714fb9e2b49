package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedsync/feedsync/pkg/domain"
)

// formatVersion is the current persisted queue schema. Version 1 was a bare
// JSON array of article ids; version 2 wraps full entry objects in an
// envelope. V1 data is readable once and rewritten as v2 on the next save.
const formatVersion = 2

type persistedQueue struct {
	Version int                 `json:"version"`
	Entries []domain.QueueEntry `json:"entries"`
}

// Load restores the queue from durable storage. Corrupt data is discarded
// with a warning and the queue starts empty; this must never crash the
// engine.
func (q *Queue) Load(ctx context.Context) error {
	if q.persister == nil {
		return nil
	}
	data, err := q.persister.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	entries, err := decodeEntries(data, q.newID, q.now)
	if err != nil {
		lgr.Printf("[WARN] discarding corrupt persisted queue: %v", err)
		return nil
	}
	if len(entries) > q.capacity {
		entries = entries[len(entries)-q.capacity:]
	}

	q.mu.Lock()
	q.entries = entries
	q.mu.Unlock()
	lgr.Printf("[INFO] restored %d pending mutations from storage", len(entries))
	return nil
}

// Persist writes the current queue state. On quota exhaustion the queue
// switches to memory-only degraded mode instead of failing callers.
func (q *Queue) Persist(ctx context.Context) error {
	if q.persister == nil {
		return nil
	}

	q.mu.Lock()
	blob := persistedQueue{Version: formatVersion, Entries: q.entries}
	data, err := json.Marshal(blob)
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}

	if err := q.persister.SaveQueue(ctx, data); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			q.mu.Lock()
			wasDegraded := q.degraded
			q.degraded = true
			q.mu.Unlock()
			if !wasDegraded {
				lgr.Printf("[WARN] queue storage quota exceeded, falling back to memory-only mode")
			}
			return nil
		}
		return fmt.Errorf("save queue: %w", err)
	}

	q.mu.Lock()
	q.degraded = false
	q.mu.Unlock()
	return nil
}

// decodeEntries sniffs the persisted format. Current data is a v2 envelope;
// a bare JSON array of numeric ids is the legacy v1 layout, migrated to
// mark_read entries with no feed association.
func decodeEntries(data []byte, newID func() string, now func() time.Time) ([]domain.QueueEntry, error) {
	var blob persistedQueue
	if err := json.Unmarshal(data, &blob); err == nil && blob.Version >= formatVersion {
		for i := range blob.Entries {
			if !blob.Entries[i].Action.Valid() {
				return nil, fmt.Errorf("entry %d has invalid action %q", i, blob.Entries[i].Action)
			}
		}
		return blob.Entries, nil
	}

	var legacyIDs []int64
	if err := json.Unmarshal(data, &legacyIDs); err != nil {
		return nil, fmt.Errorf("unrecognized queue format: %w", err)
	}
	entries := make([]domain.QueueEntry, 0, len(legacyIDs))
	for _, id := range legacyIDs {
		entries = append(entries, domain.QueueEntry{
			ID:         newID(),
			ArticleID:  id,
			Action:     domain.ActionMarkRead,
			EnqueuedAt: now(),
		})
	}
	lgr.Printf("[INFO] migrated %d legacy queue entries to current format", len(entries))
	return entries, nil
}

// MemoryPersister keeps the queue blob in memory. It backs tests and the
// degraded fallback; an optional quota simulates full storage.
type MemoryPersister struct {
	mu    sync.Mutex
	data  []byte
	Quota int // max blob size in bytes, 0 means unlimited
}

// LoadQueue returns the stored blob.
func (m *MemoryPersister) LoadQueue(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, nil
}

// SaveQueue stores the blob, enforcing the quota if set.
func (m *MemoryPersister) SaveQueue(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Quota > 0 && len(data) > m.Quota {
		return ErrQuotaExceeded
	}
	m.data = append([]byte(nil), data...)
	return nil
}
