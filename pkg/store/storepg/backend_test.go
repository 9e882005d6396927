package storepg

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

// Runs only against a real database: POS_TEST_POSTGRES_DSN=postgres://...
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("POS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POS_TEST_POSTGRES_DSN not set")
	}
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := New(openTestDB(t))
	require.NoError(t, b.Migrate(ctx))

	key := "test-" + uuid.NewString()

	_, err := b.Get(ctx, key)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, b.Put(ctx, key, []byte(`[{"id":"1"}]`)))
	require.NoError(t, b.Put(ctx, key, []byte(`[{"id":"2"}]`)))

	raw, err := b.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(raw))
}
