// Package flusher drains the mutation queue to the remote service in
// debounced batches. It owns the retry/backoff policy, the offline signal
// and the rollback of optimistic state on permanent remote rejections.
package flusher

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/feedsync/feedsync/pkg/conflictlog"
	"github.com/feedsync/feedsync/pkg/domain"
	"github.com/feedsync/feedsync/pkg/remote"
)

//go:generate moq -out mocks/queue.go -pkg mocks -skip-ensure -fmt goimports . Queue
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . StateStore
//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote

// Queue is the pending-mutation source. Entries are removed at submission
// time and restored on failure, so two flush passes can never double-submit
// the same chunk.
type Queue interface {
	DequeueBatch(maxSize int) []domain.QueueEntry
	Restore(entries []domain.QueueEntry)
	MarkOffline()
	Size() int
	Degraded() bool
}

// StateStore resolves article remote ids and rolls back rejected mutations
// to their captured pre-mutation value.
type StateStore interface {
	Get(id int64) (domain.Article, bool)
	Revert(id int64, action domain.Action, prev bool)
}

// Remote applies mutation batches.
type Remote interface {
	ApplyActions(ctx context.Context, items []remote.ActionItem) error
}

// EventLogger records flush outcomes and queue health.
type EventLogger interface {
	Event(op conflictlog.Operation, details map[string]interface{})
}

// defaults, overridable via Params
const (
	DefaultDebounce       = 500 * time.Millisecond
	DefaultThreshold      = 200
	DefaultChunkSize      = 200
	DefaultMaxAttempts    = 5
	DefaultRetryBaseDelay = time.Second
	DefaultHealthInterval = time.Minute
)

// Params holds flusher dependencies and tuning.
type Params struct {
	Queue  Queue
	Store  StateStore
	Remote Remote
	Log    EventLogger

	Debounce       time.Duration // idle window before a flush
	Threshold      int           // queue size that flushes immediately
	ChunkSize      int           // max entries per remote call
	MaxAttempts    int           // per-entry attempts before permanent failure
	RetryBaseDelay time.Duration // backoff base for transient errors
	HealthInterval time.Duration // health_check event period
}

// Flusher is the background flush task. Enqueue call sites stay
// fire-and-forget: Notify never blocks.
type Flusher struct {
	queue  Queue
	store  StateStore
	remote Remote
	log    EventLogger

	debounce       time.Duration
	threshold      int
	chunkSize      int
	maxAttempts    int
	retryBaseDelay time.Duration
	healthInterval time.Duration

	notify chan struct{}
	force  chan struct{}
	signal chan bool

	mu     sync.Mutex
	online bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates a flusher, filling zero params with defaults.
func New(p Params) *Flusher {
	if p.Debounce == 0 {
		p.Debounce = DefaultDebounce
	}
	if p.Threshold == 0 {
		p.Threshold = DefaultThreshold
	}
	if p.ChunkSize == 0 {
		p.ChunkSize = DefaultChunkSize
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.RetryBaseDelay == 0 {
		p.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if p.HealthInterval == 0 {
		p.HealthInterval = DefaultHealthInterval
	}
	return &Flusher{
		queue:          p.Queue,
		store:          p.Store,
		remote:         p.Remote,
		log:            p.Log,
		debounce:       p.Debounce,
		threshold:      p.Threshold,
		chunkSize:      p.ChunkSize,
		maxAttempts:    p.MaxAttempts,
		retryBaseDelay: p.RetryBaseDelay,
		healthInterval: p.HealthInterval,
		notify:         make(chan struct{}, 1),
		force:          make(chan struct{}, 1),
		signal:         make(chan bool, 1),
		online:         true,
	}
}

// Start launches the background flush loop.
func (f *Flusher) Start(ctx context.Context) {
	ctx, f.cancel = context.WithCancel(ctx)
	f.wg.Add(1)
	go f.run(ctx)
	lgr.Printf("[INFO] flusher started, debounce %v, threshold %d, chunk size %d", f.debounce, f.threshold, f.chunkSize)
}

// Stop terminates the loop after a final flush attempt.
func (f *Flusher) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
	f.wg.Wait()
}

// Notify signals that a mutation was enqueued. Never blocks.
func (f *Flusher) Notify() {
	select {
	case f.notify <- struct{}{}:
	default:
	}
}

// TriggerFlush requests an immediate flush, bypassing the debounce.
func (f *Flusher) TriggerFlush() {
	select {
	case f.force <- struct{}{}:
	default:
	}
}

// SetOnline feeds the connectivity signal. Going offline marks pending
// entries; coming back online flushes them without any user action.
func (f *Flusher) SetOnline(online bool) {
	select {
	case f.signal <- online:
	default:
	}
}

// Online reports the current connectivity assumption.
func (f *Flusher) Online() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.online
}

func (f *Flusher) run(ctx context.Context) {
	defer f.wg.Done()

	debounce := time.NewTimer(f.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	health := time.NewTicker(f.healthInterval)
	defer health.Stop()

	for {
		select {
		case <-ctx.Done():
			f.flushAll(context.Background()) // best effort on shutdown
			return

		case <-f.notify:
			// degraded queue storage means direct-to-remote writes, skip debounce
			if f.queue.Size() >= f.threshold || f.queue.Degraded() {
				stopTimer(debounce)
				f.flushAll(ctx)
				continue
			}
			stopTimer(debounce)
			debounce.Reset(f.debounce)

		case <-debounce.C:
			f.flushAll(ctx)

		case <-f.force:
			stopTimer(debounce)
			f.flushAll(ctx)

		case online := <-f.signal:
			f.setOnline(online)
			if online {
				lgr.Printf("[INFO] connectivity restored, flushing pending mutations")
				f.flushAll(ctx)
			} else {
				lgr.Printf("[WARN] connectivity lost, queueing mutations offline")
				f.queue.MarkOffline()
			}

		case <-health.C:
			f.logEvent(conflictlog.OpHealthCheck, map[string]interface{}{
				"queueSize": f.queue.Size(), "degraded": f.queue.Degraded(), "online": f.Online(),
			})
		}
	}
}

// flushAll drains the queue chunk by chunk until empty or a chunk fails.
func (f *Flusher) flushAll(ctx context.Context) {
	for f.flushChunk(ctx) {
	}
}

// flushChunk submits one chunk; returns true when more work may remain.
func (f *Flusher) flushChunk(ctx context.Context) bool {
	if !f.Online() {
		return false
	}

	entries := f.queue.DequeueBatch(f.chunkSize)
	if len(entries) == 0 {
		return false
	}

	items := make([]remote.ActionItem, 0, len(entries))
	for _, e := range entries {
		a, ok := f.store.Get(e.ArticleID)
		if !ok || a.RemoteID == "" {
			lgr.Printf("[WARN] dropping queued %s for unknown article %d", e.Action, e.ArticleID)
			continue
		}
		items = append(items, remote.ActionItem{RemoteID: a.RemoteID, Action: e.Action})
	}
	if len(items) == 0 {
		return f.queue.Size() > 0
	}

	var rejected error
	retrier := repeater.NewBackoff(f.maxAttempts, f.retryBaseDelay, repeater.WithMaxDelay(30*time.Second))
	err := retrier.Do(ctx, func() error {
		callErr := f.remote.ApplyActions(ctx, items)
		if callErr == nil {
			return nil
		}
		if remote.IsRejected(callErr) {
			rejected = callErr // retrying cannot make the remote accept it
			return nil
		}
		return callErr
	})

	switch {
	case rejected != nil:
		f.rollback(entries, rejected)
		return true

	case err != nil:
		f.requeue(entries, err)
		return false

	default:
		lgr.Printf("[DEBUG] flushed %d mutations in one batch", len(items))
		return f.queue.Size() > 0
	}
}

// rollback undoes the optimistic local changes of a permanently rejected
// batch and records the failure. Rejected entries are not retried.
func (f *Flusher) rollback(entries []domain.QueueEntry, cause error) {
	lgr.Printf("[WARN] remote rejected batch of %d mutations, rolling back: %v", len(entries), cause)
	for _, e := range entries {
		f.store.Revert(e.ArticleID, e.Action, e.Prev)
	}
	f.logEvent(conflictlog.OpPermanentFailure, map[string]interface{}{
		"count": len(entries), "reason": cause.Error(), "rolledBack": true,
	})
}

// requeue restores transiently failed entries for a later pass, dropping
// those that exhausted their attempts.
func (f *Flusher) requeue(entries []domain.QueueEntry, cause error) {
	lgr.Printf("[WARN] flush of %d mutations failed, will retry: %v", len(entries), cause)

	keep := make([]domain.QueueEntry, 0, len(entries))
	for _, e := range entries {
		e.Attempts++
		if e.Attempts >= f.maxAttempts {
			lgr.Printf("[WARN] dropping %s for article %d after %d attempts", e.Action, e.ArticleID, e.Attempts)
			f.logEvent(conflictlog.OpPermanentFailure, map[string]interface{}{
				"articleId": e.ArticleID, "action": string(e.Action), "attempts": e.Attempts, "reason": cause.Error(),
			})
			continue
		}
		if !f.Online() {
			e.Offline = true
		}
		keep = append(keep, e)
	}
	f.queue.Restore(keep)
}

func (f *Flusher) setOnline(online bool) {
	f.mu.Lock()
	f.online = online
	f.mu.Unlock()
}

func (f *Flusher) logEvent(op conflictlog.Operation, details map[string]interface{}) {
	if f.log != nil {
		f.log.Event(op, details)
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
