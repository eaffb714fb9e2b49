package domain

import "time"

// ArticleState is the locally mutable part of an article: the read and
// starred flags the user toggles from the UI.
type ArticleState struct {
	Read    bool `json:"read"`
	Starred bool `json:"starred"`
}

// Article represents a feed article as known locally. RemoteID is the
// identifier assigned by the remote feed service; ID is the local row id.
//
// LastLocalUpdate is stamped on every local mutation and compared against
// LastSyncUpdate to decide whether local changes are newer than the last
// known sync. The remote service provides no per-change timestamps, so this
// pair is the only ordering signal available.
type Article struct {
	ID              int64
	RemoteID        string
	FeedID          int64
	Title           string
	Link            string
	Read            bool
	Starred         bool
	LastLocalUpdate *time.Time
	LastSyncUpdate  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// State returns the article's current read/starred pair.
func (a *Article) State() ArticleState {
	return ArticleState{Read: a.Read, Starred: a.Starred}
}

// HasLocalChanges reports whether the article carries local mutations not
// yet acknowledged by a sync. A nil LastLocalUpdate means no local changes;
// a nil LastSyncUpdate with a set LastLocalUpdate means never synced.
func (a *Article) HasLocalChanges() bool {
	if a.LastLocalUpdate == nil {
		return false
	}
	if a.LastSyncUpdate == nil {
		return true
	}
	return a.LastLocalUpdate.After(*a.LastSyncUpdate)
}

// Feed represents a subscription source. Articles belong to exactly one
// feed and are removed with it (relational cascade, not iterated by the
// engine).
type Feed struct {
	ID        int64
	RemoteID  string
	Title     string
	URL       string
	CreatedAt time.Time
}
