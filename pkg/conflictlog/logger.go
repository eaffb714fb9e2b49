// Package conflictlog writes append-only JSONL records for conflicts and
// queue-health events. One JSON object per line; prior lines are never
// touched. Rotation is managed externally.
package conflictlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedsync/feedsync/pkg/domain"
)

// Operation distinguishes record kinds sharing the same log.
type Operation string

// known operations
const (
	OpAddToQueue        Operation = "add_to_queue"
	OpQueueOverflow     Operation = "queue_overflow"
	OpHealthCheck       Operation = "health_check"
	OpSyncCompletion    Operation = "sync_completion"
	OpSyncFailure       Operation = "sync_failure"
	OpPermanentFailure  Operation = "permanent_failure"
	OpProcessingMetrics Operation = "processing_metrics"
	OpConflict          Operation = "conflict"
)

// Record is one log line.
type Record struct {
	Timestamp time.Time              `json:"timestamp"`
	Operation Operation              `json:"operation"`
	Conflict  *domain.ConflictRecord `json:"conflict,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger appends records to an io.Writer, one complete line per record.
// Writes go through a buffered channel drained by a background goroutine so
// callers on the sync or enqueue path never block on disk. When the channel
// is full the record is written synchronously instead of dropped; either
// path issues a single Write per line, keeping lines atomic.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	ch     chan []byte
	done   chan struct{}
	now    func() time.Time
}

// New opens path for appending and starts the background writer.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // log path comes from config
	if err != nil {
		return nil, fmt.Errorf("open conflict log: %w", err)
	}
	l := NewWithWriter(f)
	l.closer = f
	return l, nil
}

// NewWithWriter makes a logger over an arbitrary writer, mostly for tests.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{
		w:    w,
		ch:   make(chan []byte, 256),
		done: make(chan struct{}),
		now:  time.Now,
	}
	go l.writeLoop()
	return l
}

// Conflict appends one conflict record.
func (l *Logger) Conflict(rec domain.ConflictRecord) {
	l.append(Record{Timestamp: l.now().UTC(), Operation: OpConflict, Conflict: &rec})
}

// Event appends a queue-health or session event.
func (l *Logger) Event(op Operation, details map[string]interface{}) {
	l.append(Record{Timestamp: l.now().UTC(), Operation: op, Details: details})
}

// Close drains pending records and closes the underlying file if any.
func (l *Logger) Close() error {
	close(l.ch)
	<-l.done
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func (l *Logger) append(rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		lgr.Printf("[WARN] failed to marshal log record: %v", err)
		return
	}
	line := append(data, '\n')

	select {
	case l.ch <- line:
	default: // channel full, write in the caller to avoid losing the record
		l.write(line)
	}
}

func (l *Logger) writeLoop() {
	defer close(l.done)
	for line := range l.ch {
		l.write(line)
	}
}

func (l *Logger) write(line []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(line); err != nil {
		lgr.Printf("[WARN] failed to write log record: %v", err)
	}
}
