package patternstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "a/one.cells", []byte("O")))
	require.NoError(t, store.Put(ctx, "a/two.cells", []byte("OO")))
	require.NoError(t, store.Put(ctx, "b/three.cells", []byte("OOO")))

	rc, err := store.Open(ctx, "a/two.cells")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, []byte("OO"), data)

	_, err = store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := store.List(ctx, "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one.cells", "a/two.cells"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("O.")
	require.NoError(t, store.Put(ctx, "p", data))
	data[0] = 'X'

	rc, err := store.Open(ctx, "p")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	assert.Equal(t, []byte("O."), got)
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "ships"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ships", "glider.cells"), []byte(".O.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "block.cells"), []byte("OO\n"), 0o644))

	store := NewLocalStore(root)

	rc, err := store.Open(ctx, "ships/glider.cells")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, []byte(".O.\n"), data)

	_, err = store.Open(ctx, "missing.cells")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := store.List(ctx, "ships/")
	require.NoError(t, err)
	assert.Equal(t, []string{"ships/glider.cells"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"block.cells", "ships/glider.cells"}, all)
}
