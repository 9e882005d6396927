// Package storepg is a store.Backend over a single Postgres key/value table.
package storepg

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS pos_kv (
	key        TEXT PRIMARY KEY,
	value      JSON NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	getQuery = `SELECT value FROM pos_kv WHERE key = $1`
	putQuery = `
INSERT INTO pos_kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type Backend struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Backend {
	return &Backend{db: db}
}

// Migrate creates the table when it is missing.
func (b *Backend) Migrate(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, schema)
	return errors.Wrap(err, "create pos_kv")
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := b.db.GetContext(ctx, &raw, getQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", key)
	}
	return raw, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return store.ErrInvalidKey
	}
	_, err := b.db.ExecContext(ctx, putQuery, key, string(value))
	return errors.Wrapf(err, "put %s", key)
}
