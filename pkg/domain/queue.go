package domain

import "time"

// QueueEntry is a pending mutation awaiting flush to the remote service.
// Entries survive restarts via the persisted queue blob and are removed
// only after the remote write succeeds.
//
// Prev is the value of the action's flag before the first unflushed
// mutation of its (article, category) slot. Coalescing keeps the original
// Prev while the payload is replaced, so a rejected flush can restore the
// true pre-mutation state rather than undoing the surviving action.
type QueueEntry struct {
	ID         string    `json:"id"`
	ArticleID  int64     `json:"articleId"`
	FeedID     int64     `json:"feedId"`
	Action     Action    `json:"action"`
	Prev       bool      `json:"prev"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
	Offline    bool      `json:"offline"`
	Attempts   int       `json:"attempts"`
}

// BatchResult aggregates the outcome of a chunked bulk operation.
type BatchResult struct {
	TotalChunks      int
	SuccessfulChunks int
	FailedChunks     int
	ProcessedCount   int
	Errors           []error
}
