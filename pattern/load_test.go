package pattern

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/golife/patternstore"
)

func TestLoadFromStore(t *testing.T) {
	ctx := context.Background()
	store := patternstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "ships/glider.cells", []byte(".O.\n..O\nOOO\n")))

	p, err := Load(ctx, store, "ships/glider.cells")
	require.NoError(t, err)
	assert.Equal(t, "glider", p.Name)
	assert.Equal(t, Glider.Cells, p.Cells)
}

func TestLoadBuiltinBypassesStore(t *testing.T) {
	p, err := Load(context.Background(), nil, "blinker")
	require.NoError(t, err)
	assert.Same(t, Blinker, p)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(context.Background(), patternstore.NewMemoryStore(), "nope.cells")
	assert.ErrorIs(t, err, patternstore.ErrNotFound)

	_, err = Load(context.Background(), nil, "nope.cells")
	assert.ErrorIs(t, err, patternstore.ErrNotFound)
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	store := patternstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "still/block.cells", []byte("OO\nOO\n")))
	require.NoError(t, store.Put(ctx, "still/pond.cells", []byte(".OO.\nO..O\nO..O\n.OO.\n")))
	require.NoError(t, store.Put(ctx, "ships/glider.rle", []byte("x = 3, y = 3\nbob$2bo$3o!")))

	patterns, err := LoadAll(ctx, store, "still/")
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "block", patterns[0].Name)
	assert.Equal(t, "pond", patterns[1].Name)
}

func TestLoadAllBadEntry(t *testing.T) {
	ctx := context.Background()
	store := patternstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "bad.cells", []byte("???\n")))

	_, err := LoadAll(ctx, store, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.cells")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "glider", displayName("ships/glider.rle"))
	assert.Equal(t, "glider", displayName("glider.cells.gz"))
	assert.Equal(t, "pulsar", displayName("deep/nested/pulsar.txt"))
}
