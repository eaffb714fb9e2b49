// Package store holds the locally known state of every article. All
// operations are synchronous in-memory map updates so the UI caller is
// never gated on storage or network; durability and remote convergence are
// the queue's and flusher's job.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedsync/feedsync/pkg/domain"
)

//go:generate moq -out mocks/enqueuer.go -pkg mocks -skip-ensure -fmt goimports . Enqueuer

// Enqueuer appends a pending mutation for later flush. prev carries the
// flag value before the mutation so a rejected flush can restore it.
// Failures are swallowed here: local state is already updated and the
// queue handles its own degraded mode.
type Enqueuer interface {
	Enqueue(articleID, feedID int64, action domain.Action, prev bool) (domain.QueueEntry, error)
}

// Patch is a partial state update; nil fields are left untouched.
type Patch struct {
	Read    *bool
	Starred *bool
}

// Store is the in-memory article state map.
type Store struct {
	mu       sync.RWMutex
	articles map[int64]domain.Article
	queue    Enqueuer
	now      func() time.Time
}

// New creates an empty store enqueueing mutations to the given queue.
func New(queue Enqueuer) *Store {
	return &Store{
		articles: make(map[int64]domain.Article),
		queue:    queue,
		now:      time.Now,
	}
}

// Seed replaces the store content, used at startup from the repository.
func (s *Store) Seed(articles []domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = make(map[int64]domain.Article, len(articles))
	for _, a := range articles {
		s.articles[a.ID] = a
	}
}

// Get returns a copy of the article state.
func (s *Store) Get(id int64) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	return a, ok
}

// Len returns the number of known articles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

// Snapshot returns a copy of all articles, used by the pull sync so each
// article is evaluated against a consistent value.
func (s *Store) Snapshot() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, a)
	}
	return out
}

// Apply performs a user action on the article: the flag flips immediately,
// LastLocalUpdate is stamped and a queue entry is appended. Unknown ids are
// a programmer error and rejected.
func (s *Store) Apply(id int64, action domain.Action) error {
	if !action.Valid() {
		return fmt.Errorf("invalid action %q", action)
	}

	s.mu.Lock()
	a, ok := s.articles[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("article %d not found", id)
	}
	prev := action.Category().Flag(a.State())
	st := action.Apply(a.State())
	a.Read, a.Starred = st.Read, st.Starred
	ts := s.now()
	a.LastLocalUpdate = &ts
	s.articles[id] = a
	s.mu.Unlock()

	if _, err := s.queue.Enqueue(id, a.FeedID, action, prev); err != nil {
		lgr.Printf("[WARN] failed to enqueue %s for article %d: %v", action, id, err)
	}
	return nil
}

// Update applies a partial state change, translating changed flags into
// actions so the queue sees the user's intent per category.
func (s *Store) Update(id int64, p Patch) error {
	for _, action := range p.actions() {
		if err := s.Apply(id, action); err != nil {
			return err
		}
	}
	return nil
}

// BatchUpdate applies the patch to all given articles, e.g. "mark all
// read". Unknown ids are skipped rather than failing the whole batch.
func (s *Store) BatchUpdate(ids []int64, p Patch) {
	for _, id := range ids {
		if err := s.Update(id, p); err != nil {
			lgr.Printf("[WARN] batch update skipped article %d: %v", id, err)
		}
	}
}

// Revert rolls back a rejected action by restoring the captured
// pre-mutation value of its flag and drops the local intent. Applying the
// inverse action would be wrong for idempotent re-marks and for coalesced
// entries whose surviving payload differs from the first mutation.
func (s *Store) Revert(id int64, action domain.Action, prev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return
	}
	st := action.Category().SetFlag(a.State(), prev)
	a.Read, a.Starred = st.Read, st.Starred
	a.LastLocalUpdate = nil
	s.articles[id] = a
}

// AdoptRemote overwrites the article flags with remote values and advances
// LastSyncUpdate. When clearLocal is set (conflict resolution) the
// discarded local intent is forgotten, not retried.
func (s *Store) AdoptRemote(id int64, remote domain.ArticleState, syncTime time.Time, clearLocal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return
	}
	a.Read, a.Starred = remote.Read, remote.Starred
	a.LastSyncUpdate = &syncTime
	if clearLocal {
		a.LastLocalUpdate = nil
	}
	s.articles[id] = a
}

// AdvanceSync records that local state was confirmed by the sync without
// changing flags.
func (s *Store) AdvanceSync(id int64, syncTime time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return
	}
	a.LastSyncUpdate = &syncTime
	s.articles[id] = a
}

// Insert adds an article discovered by the pull sync.
func (s *Store) Insert(a domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.ID] = a
}

// RemoveFeed drops all articles of a deleted feed, mirroring the
// relational cascade.
func (s *Store) RemoveFeed(feedID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, a := range s.articles {
		if a.FeedID == feedID {
			delete(s.articles, id)
			removed++
		}
	}
	return removed
}

// Remove drops the given articles, e.g. after a cleanup pass.
func (s *Store) Remove(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.articles, id)
	}
}

func (p Patch) actions() []domain.Action {
	var actions []domain.Action
	if p.Read != nil {
		if *p.Read {
			actions = append(actions, domain.ActionMarkRead)
		} else {
			actions = append(actions, domain.ActionMarkUnread)
		}
	}
	if p.Starred != nil {
		if *p.Starred {
			actions = append(actions, domain.ActionStar)
		} else {
			actions = append(actions, domain.ActionUnstar)
		}
	}
	return actions
}
