package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVRepo stores string values by key. It satisfies theme.Storage.
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new KVRepo.
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Read returns the value stored under key. ok is false when the key is absent.
func (r *KVRepo) Read(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

// Write stores value under key, replacing any previous value.
func (r *KVRepo) Write(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}
