package badger

import (
	"context"
	"testing"

	"github.com/poiesic/librarium/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCache(t *testing.T) {
	cache, err := NewMemoryCache()
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	hash := storage.HashText("Harrison medicina interna")
	vector := []float32{0.5, 0.25, -0.75}

	t.Run("miss on unknown item", func(t *testing.T) {
		vec, ok, err := cache.Get(ctx, "b1", hash)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, vec)
	})

	t.Run("hit after put", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, "b1", hash, vector))

		vec, ok, err := cache.Get(ctx, "b1", hash)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, vector, vec)
	})

	t.Run("stale hash is a miss", func(t *testing.T) {
		changed := storage.HashText("Harrison medicina interna, 21a ed.")
		vec, ok, err := cache.Get(ctx, "b1", changed)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, vec)
	})

	t.Run("put replaces previous entry", func(t *testing.T) {
		newHash := storage.HashText("nuevo contenido")
		newVector := []float32{1, 0, 0}
		require.NoError(t, cache.Put(ctx, "b1", newHash, newVector))

		_, ok, err := cache.Get(ctx, "b1", hash)
		require.NoError(t, err)
		assert.False(t, ok)

		vec, ok, err := cache.Get(ctx, "b1", newHash)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, newVector, vec)
	})

	t.Run("empty item id", func(t *testing.T) {
		_, _, err := cache.Get(ctx, " ", hash)
		assert.ErrorIs(t, err, storage.ErrEmptyItemID)

		err = cache.Put(ctx, "", hash, vector)
		assert.ErrorIs(t, err, storage.ErrEmptyItemID)
	})
}

func TestVectorCacheClosed(t *testing.T) {
	cache, err := NewMemoryCache()
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	ctx := context.Background()
	_, _, err = cache.Get(ctx, "b1", 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = cache.Put(ctx, "b1", 1, []float32{1})
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
