package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/librarium/ai/mock"
	"github.com/poiesic/librarium/knowledge"
)

func TestBuildEmbeddingStore(t *testing.T) {
	ctx := context.Background()
	base := knowledge.DefaultBase()

	t.Run("one vector per category in base order", func(t *testing.T) {
		store, err := BuildEmbeddingStore(ctx, base, mock.NewMockEmbedder())
		require.NoError(t, err)
		require.Equal(t, len(base.Categories), store.Len())

		for i, id := range store.Categories() {
			assert.Equal(t, base.Categories[i].ID, id)
			vec, ok := store.Vector(id)
			assert.True(t, ok)
			assert.NotEmpty(t, vec)
		}
	})

	t.Run("embeds representative texts", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		var captured []string
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			captured = texts
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{1}
			}
			return vectors, nil
		}

		_, err := BuildEmbeddingStore(ctx, base, embedder)
		require.NoError(t, err)
		require.Len(t, captured, len(base.Categories))
		for i := range base.Categories {
			assert.Equal(t, base.Categories[i].RepresentativeText(), captured[i])
		}
	})

	t.Run("backend error propagates", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		backendErr := errors.New("connection refused")
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, backendErr
		}

		store, err := BuildEmbeddingStore(ctx, base, embedder)
		assert.Nil(t, store)
		assert.ErrorIs(t, err, backendErr)
	})

	t.Run("count mismatch rejected", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1}}, nil
		}

		_, err := BuildEmbeddingStore(ctx, base, embedder)
		assert.ErrorIs(t, err, ErrVectorCountMismatch)
	})

	t.Run("empty vector rejected", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{1}
			}
			vectors[2] = nil
			return vectors, nil
		}

		_, err := BuildEmbeddingStore(ctx, base, embedder)
		assert.ErrorIs(t, err, ErrEmptyVector)
	})

	t.Run("unknown category has no vector", func(t *testing.T) {
		store, err := BuildEmbeddingStore(ctx, base, mock.NewMockEmbedder())
		require.NoError(t, err)
		_, ok := store.Vector("astrofisica")
		assert.False(t, ok)
	})
}
