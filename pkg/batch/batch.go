// Package batch provides chunked execution of bulk operations and the
// mass-deletion safety guard used by reconciliation.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedsync/feedsync/pkg/domain"
)

// DefaultChunkSize bounds one remote or sql call. Requests carrying much
// more than this many ids start hitting transport length limits.
const DefaultChunkSize = 200

// Process splits items into ceil(len/chunkSize) chunks preserving order and
// runs op on each. A failed chunk does not stop the remaining ones; the
// aggregate result reports both counts. A non-zero delay is inserted
// between chunks to avoid hammering the remote side.
func Process[T any](ctx context.Context, items []T, chunkSize int, delay time.Duration,
	op func(ctx context.Context, chunk []T) error) (domain.BatchResult, error) {

	if chunkSize <= 0 {
		return domain.BatchResult{}, fmt.Errorf("invalid chunk size %d", chunkSize)
	}

	res := domain.BatchResult{}
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]
		res.TotalChunks++

		if err := ctx.Err(); err != nil {
			res.FailedChunks++
			res.Errors = append(res.Errors, err)
			continue
		}

		if err := op(ctx, chunk); err != nil {
			lgr.Printf("[WARN] chunk %d failed (%d items): %v", res.TotalChunks, len(chunk), err)
			res.FailedChunks++
			res.Errors = append(res.Errors, fmt.Errorf("chunk %d: %w", res.TotalChunks, err))
			continue
		}

		res.SuccessfulChunks++
		res.ProcessedCount += len(chunk)

		if delay > 0 && end < len(items) {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
		}
	}
	return res, nil
}
