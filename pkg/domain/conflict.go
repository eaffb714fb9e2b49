package domain

import (
	"fmt"
	"time"
)

// ConflictType classifies which flags diverged between local and remote.
type ConflictType string

// conflict types
const (
	ConflictRead    ConflictType = "read_status"
	ConflictStarred ConflictType = "starred_status"
	ConflictBoth    ConflictType = "both"
)

// ClassifyConflict compares local and remote state and returns the conflict
// type, or ok=false when the states agree.
func ClassifyConflict(local, remote ArticleState) (ct ConflictType, ok bool) {
	readDiff := local.Read != remote.Read
	starDiff := local.Starred != remote.Starred
	switch {
	case readDiff && starDiff:
		return ConflictBoth, true
	case readDiff:
		return ConflictRead, true
	case starDiff:
		return ConflictStarred, true
	}
	return "", false
}

// ConflictRecord documents one local/remote divergence and its resolution.
// Records are append-only; the engine never rewrites them.
type ConflictRecord struct {
	Timestamp       time.Time    `json:"timestamp"`
	SyncSessionID   string       `json:"syncSessionId"`
	ArticleID       int64        `json:"articleId"`
	FeedID          int64        `json:"feedId"`
	ConflictType    ConflictType `json:"conflictType"`
	LocalValue      ArticleState `json:"localValue"`
	RemoteValue     ArticleState `json:"remoteValue"`
	Resolution      string       `json:"resolution"`
	LastLocalUpdate *time.Time   `json:"lastLocalUpdate"`
	LastSyncUpdate  *time.Time   `json:"lastSyncUpdate"`
	Note            string       `json:"note,omitempty"`
}

// SyncSession identifies one pull-sync pass and aggregates its counters.
type SyncSession struct {
	ID                string
	StartedAt         time.Time
	ArticlesProcessed int
	ConflictsDetected int
	ConflictsByType   map[ConflictType]int
}

// NewSyncSession starts a session stamped with the given time.
func NewSyncSession(now time.Time) *SyncSession {
	return &SyncSession{
		ID:              fmt.Sprintf("sync_%s", now.UTC().Format(time.RFC3339)),
		StartedAt:       now,
		ConflictsByType: map[ConflictType]int{},
	}
}

// RecordConflict bumps the session counters for one detected conflict.
func (s *SyncSession) RecordConflict(ct ConflictType) {
	s.ConflictsDetected++
	s.ConflictsByType[ct]++
}
