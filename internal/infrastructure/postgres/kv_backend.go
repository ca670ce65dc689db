package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
)

var _ kvstore.Backend = (*KVBackend)(nil)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVBackend kvstore.Backend sobre la tabla kv_store (una fila por clave).
type KVBackend struct {
	q Querier
}

// NewKVBackend construye el adaptador. Pasar pool o tx (Querier).
func NewKVBackend(q Querier) *KVBackend {
	return &KVBackend{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (b *KVBackend) EnsureSchema(ctx context.Context) error {
	if _, err := b.q.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("crear kv_store: %w", err)
	}
	return nil
}

// Get implementa kvstore.Backend.
func (b *KVBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := b.q.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set implementa kvstore.Backend (upsert).
func (b *KVBackend) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := b.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete implementa kvstore.Backend.
func (b *KVBackend) Delete(ctx context.Context, key string) error {
	if _, err := b.q.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
