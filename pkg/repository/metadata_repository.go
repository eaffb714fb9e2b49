package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feedsync/feedsync/pkg/queue"
)

// queueKey is the sync_metadata row holding the persisted mutation queue.
const queueKey = "mutation_queue"

// MetadataRepository handles the sync_metadata key/value table. It doubles
// as the durable seam for the mutation queue (queue.Persister).
type MetadataRepository struct {
	db *sqlx.DB
}

// NewMetadataRepository creates a new metadata repository
func NewMetadataRepository(db *sqlx.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// GetValue retrieves a metadata value, empty string when absent
func (r *MetadataRepository) GetValue(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM sync_metadata WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get metadata: %w", err)
	}
	return value, nil
}

// SetValue stores a metadata value
func (r *MetadataRepository) SetValue(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO sync_metadata (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set metadata: %w", err)
	}
	return nil
}

// LoadQueue implements queue.Persister
func (r *MetadataRepository) LoadQueue(ctx context.Context) ([]byte, error) {
	value, err := r.GetValue(ctx, queueKey)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// SaveQueue implements queue.Persister, translating storage exhaustion into
// the quota error the queue recovers from
func (r *MetadataRepository) SaveQueue(ctx context.Context, data []byte) error {
	if err := r.SetValue(ctx, queueKey, string(data)); err != nil {
		if isFullError(err) {
			return fmt.Errorf("%w: %s", queue.ErrQuotaExceeded, err.Error())
		}
		return err
	}
	return nil
}
