// Package queue implements the bounded, durably persisted FIFO queue of
// pending article mutations awaiting flush to the remote service.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/domain"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// ErrQuotaExceeded is returned by a Persister when durable storage is full.
// The queue recovers by keeping entries in memory only.
var ErrQuotaExceeded = errors.New("queue storage quota exceeded")

// DefaultCapacity bounds the queue under pathological rapid-marking
// sessions. Past it the oldest entry is evicted, not the newest rejected.
const DefaultCapacity = 1000

// Persister stores the serialized queue across restarts.
type Persister interface {
	LoadQueue(ctx context.Context) ([]byte, error)
	SaveQueue(ctx context.Context, data []byte) error
}

// EventLogger records queue-health events.
type EventLogger interface {
	Event(op conflictlog.Operation, details map[string]interface{})
}

// Queue is a bounded FIFO of pending mutations with per-(article,category)
// coalescing: mark_read/mark_unread share a slot, star/unstar share
// another, so only the user's latest intent per flag is kept. All methods
// are safe for concurrent use and return without touching disk; persistence
// happens on a background goroutine.
type Queue struct {
	mu       sync.Mutex
	entries  []domain.QueueEntry
	capacity int
	degraded bool

	persister Persister
	log       EventLogger

	saveCh chan struct{}
	wg     sync.WaitGroup
	cancel context.CancelFunc

	now   func() time.Time
	newID func() string
}

// New creates a queue. A nil persister means memory-only operation.
func New(capacity int, persister Persister, log EventLogger) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		capacity:  capacity,
		persister: persister,
		log:       log,
		saveCh:    make(chan struct{}, 1),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Start launches the background saver. Stop waits for it to finish and
// writes the final state.
func (q *Queue) Start(ctx context.Context) {
	ctx, q.cancel = context.WithCancel(ctx)
	q.wg.Add(1)
	go q.saveLoop(ctx)
}

// Stop terminates the saver after a final persist.
func (q *Queue) Stop() {
	if q.cancel != nil {
		q.cancel()
	}
	q.wg.Wait()
}

// Enqueue adds a mutation for the article, coalescing with any pending
// entry of the same category. prev is the flag value before the mutation;
// on coalescing the slot keeps its original prev so rollback restores the
// true pre-mutation state. At capacity the single oldest entry is evicted
// first. Returns the admitted entry; the only error is an invalid action
// kind.
func (q *Queue) Enqueue(articleID, feedID int64, action domain.Action, prev bool) (domain.QueueEntry, error) {
	if !action.Valid() {
		return domain.QueueEntry{}, fmt.Errorf("invalid action %q", action)
	}

	q.mu.Lock()
	entry := domain.QueueEntry{
		ID:         q.newID(),
		ArticleID:  articleID,
		FeedID:     feedID,
		Action:     action,
		Prev:       prev,
		EnqueuedAt: q.now(),
	}

	// latest wins within the same (article, category) slot, position and
	// original pre-mutation value kept
	coalesced := false
	if i := q.slotLocked(articleID, action.Category()); i >= 0 {
		entry.ID = q.entries[i].ID
		entry.Prev = q.entries[i].Prev
		q.entries[i] = entry
		coalesced = true
	}

	var evicted *domain.QueueEntry
	if !coalesced {
		if len(q.entries) >= q.capacity {
			dropped := q.entries[0]
			evicted = &dropped
			q.entries = q.entries[1:]
		}
		q.entries = append(q.entries, entry)
	}
	q.mu.Unlock()

	if evicted != nil {
		lgr.Printf("[WARN] queue at capacity %d, dropped oldest entry for article %d", q.capacity, evicted.ArticleID)
		q.event(conflictlog.OpQueueOverflow, map[string]interface{}{
			"droppedArticleId": evicted.ArticleID, "droppedAction": string(evicted.Action), "capacity": q.capacity,
		})
	}
	q.event(conflictlog.OpAddToQueue, map[string]interface{}{
		"articleId": articleID, "action": string(action), "coalesced": coalesced,
	})

	q.scheduleSave()
	return entry, nil
}

// DequeueBatch removes and returns up to maxSize entries from the front.
// Removal happens at submission time so a concurrent flush cannot pick up
// the same chunk; callers must Restore on failure.
func (q *Queue) DequeueBatch(maxSize int) []domain.QueueEntry {
	q.mu.Lock()
	n := maxSize
	if n > len(q.entries) {
		n = len(q.entries)
	}
	if n <= 0 {
		q.mu.Unlock()
		return nil
	}
	batch := make([]domain.QueueEntry, n)
	copy(batch, q.entries[:n])
	q.entries = append([]domain.QueueEntry(nil), q.entries[n:]...)
	q.mu.Unlock()

	q.scheduleSave()
	return batch
}

// Restore puts failed entries back at the front in their original order,
// re-coalescing against mutations enqueued while the batch was in flight
// and evicting from the tail if capacity would be exceeded. When a slot
// already holds a newer intent the newer payload wins but the restored
// entry's pre-mutation value is kept.
func (q *Queue) Restore(entries []domain.QueueEntry) {
	if len(entries) == 0 {
		return
	}
	q.mu.Lock()
	front := make([]domain.QueueEntry, 0, len(entries))
	for _, e := range entries {
		if i := q.slotLocked(e.ArticleID, e.Action.Category()); i >= 0 {
			q.entries[i].Prev = e.Prev
			continue
		}
		front = append(front, e)
	}
	q.entries = append(front, q.entries...)
	for len(q.entries) > q.capacity {
		dropped := q.entries[len(q.entries)-1]
		q.entries = q.entries[:len(q.entries)-1]
		lgr.Printf("[WARN] queue overflow on restore, dropped entry for article %d", dropped.ArticleID)
	}
	q.mu.Unlock()
	q.scheduleSave()
}

// slotLocked finds the pending entry occupying the (article, category)
// slot. Callers must hold q.mu.
func (q *Queue) slotLocked(articleID int64, cat domain.ActionCategory) int {
	for i := range q.entries {
		if q.entries[i].ArticleID == articleID && q.entries[i].Action.Category() == cat {
			return i
		}
	}
	return -1
}

// MarkOffline flags all pending entries as accumulated while offline.
func (q *Queue) MarkOffline() {
	q.mu.Lock()
	for i := range q.entries {
		q.entries[i].Offline = true
	}
	q.mu.Unlock()
	q.scheduleSave()
}

// Size returns the number of pending entries.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// HasCapacity reports whether an enqueue would not evict.
func (q *Queue) HasCapacity() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries) < q.capacity
}

// Degraded reports whether durable persistence has failed and the queue is
// running memory-only.
func (q *Queue) Degraded() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.degraded
}

// Entries returns a snapshot of pending entries in FIFO order.
func (q *Queue) Entries() []domain.QueueEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.QueueEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *Queue) event(op conflictlog.Operation, details map[string]interface{}) {
	if q.log != nil {
		q.log.Event(op, details)
	}
}

func (q *Queue) scheduleSave() {
	select {
	case q.saveCh <- struct{}{}:
	default:
	}
}

func (q *Queue) saveLoop(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			if err := q.Persist(context.Background()); err != nil {
				lgr.Printf("[WARN] final queue persist failed: %v", err)
			}
			return
		case <-q.saveCh:
			if err := q.Persist(ctx); err != nil {
				lgr.Printf("[WARN] queue persist failed: %v", err)
			}
		}
	}
}
