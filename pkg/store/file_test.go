package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	fb, err := NewFileBackend(dir)
	require.NoError(t, err)

	_, err = fb.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fb.Put(ctx, KeyProducts, []byte(`[{"id":"1"}]`)))
	require.NoError(t, fb.Put(ctx, KeyProducts, []byte(`[{"id":"2"}]`)))

	raw, err := fb.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2"}]`, string(raw))

	onDisk, err := os.ReadFile(filepath.Join(dir, KeyProducts+".json"))
	require.NoError(t, err)
	assert.Equal(t, raw, onDisk)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileBackendRejectsBadKeys(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", `a\b`, ".hidden"} {
		err := fb.Put(context.Background(), key, []byte("[]"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}
