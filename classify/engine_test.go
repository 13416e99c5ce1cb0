// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/librarium/ai/mock"
	"github.com/poiesic/librarium/catalog"
	"github.com/poiesic/librarium/knowledge"
	"github.com/poiesic/librarium/storage/badger"
)

func TestNewEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("nil base rejected", func(t *testing.T) {
		_, err := NewEngine(ctx, nil, nil)
		assert.ErrorIs(t, err, ErrKnowledgeBaseRequired)
	})

	t.Run("invalid base rejected", func(t *testing.T) {
		broken := &knowledge.Base{
			Categories: []knowledge.Category{{ID: "", Keywords: []string{"x"}}},
		}
		_, err := NewEngine(ctx, broken, nil)
		assert.ErrorIs(t, err, knowledge.ErrEmptyCategoryID)
	})

	t.Run("nil embedder runs rule-only", func(t *testing.T) {
		engine, err := NewEngine(ctx, knowledge.DefaultBase(), nil)
		require.NoError(t, err)
		defer engine.Release()

		assert.False(t, engine.VectorMode())
		category, confidence := engine.Classify(ctx, "necesito un libro de programación en python")
		assert.Equal(t, "ingenieria_software", category)
		assert.Equal(t, 0.8, confidence)
	})

	t.Run("store build failure degrades to rule-only", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("connection refused")
		}

		engine, err := NewEngine(ctx, knowledge.DefaultBase(), embedder)
		require.NoError(t, err)
		defer engine.Release()

		assert.False(t, engine.VectorMode())
		category, confidence := engine.Classify(ctx, "python")
		assert.Equal(t, "ingenieria_software", category)
		assert.Equal(t, 0.8, confidence)
	})

	t.Run("embedder enables vector mode", func(t *testing.T) {
		engine, err := NewEngine(ctx, knowledge.DefaultBase(), mock.NewMockEmbedder())
		require.NoError(t, err)
		defer engine.Release()

		assert.True(t, engine.VectorMode())
	})

	t.Run("invalid threshold option rejected", func(t *testing.T) {
		_, err := NewEngine(ctx, knowledge.DefaultBase(), nil, WithClassifyThreshold(1.5))
		assert.ErrorIs(t, err, ErrInvalidThreshold)

		_, err = NewEngine(ctx, knowledge.DefaultBase(), nil, WithMatchThreshold(-0.1))
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})

	t.Run("pool size option", func(t *testing.T) {
		engine, err := NewEngine(ctx, knowledge.DefaultBase(), mock.NewMockEmbedder(), WithPoolSize(2))
		require.NoError(t, err)
		defer engine.Release()

		assert.True(t, engine.VectorMode())
	})
}

func TestEngineClassify(t *testing.T) {
	ctx := context.Background()
	base := knowledge.DefaultBase()

	t.Run("confidence stays within unit interval", func(t *testing.T) {
		engine, err := NewEngine(ctx, base, mock.NewMockEmbedder())
		require.NoError(t, err)
		defer engine.Release()

		for _, query := range []string{"medicina", "python", "hola", "tesis de derecho penal"} {
			_, confidence := engine.Classify(ctx, query)
			assert.GreaterOrEqual(t, confidence, 0.0, "query %q", query)
			assert.LessOrEqual(t, confidence, 1.0, "query %q", query)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		engine, err := NewEngine(ctx, base, mock.NewMockEmbedder())
		require.NoError(t, err)
		defer engine.Release()

		firstCat, firstConf := engine.Classify(ctx, "libros de anatomía y fisiología")
		secondCat, secondConf := engine.Classify(ctx, "libros de anatomía y fisiología")
		assert.Equal(t, firstCat, secondCat)
		assert.Equal(t, firstConf, secondConf)
	})

	t.Run("explicit threshold overrides default", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		engine, err := NewEngine(ctx, base, embedder)
		require.NoError(t, err)
		defer engine.Release()

		_, score := engine.ClassifyWithThreshold(ctx, "consulta general", 0)
		strictCat, _ := engine.ClassifyWithThreshold(ctx, "consulta general", 1)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.Empty(t, strictCat)
	})
}

func TestEngineDetectScenario(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, knowledge.DefaultBase(), nil)
	require.NoError(t, err)
	defer engine.Release()

	t.Run("scenario keyword detected", func(t *testing.T) {
		assert.Equal(t, "investigación", engine.DetectScenario("material para mi tesis"))
		assert.Equal(t, "pregrado_inicio", engine.DetectScenario("estoy en primer semestre"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, "investigación", engine.DetectScenario("TESIS de grado"))
	})

	t.Run("no scenario signal", func(t *testing.T) {
		assert.Empty(t, engine.DetectScenario("hola"))
	})
}

func TestEngineRecommendations(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, knowledge.DefaultBase(), nil)
	require.NoError(t, err)
	defer engine.Release()

	t.Run("category and scenario pair", func(t *testing.T) {
		rec := engine.Recommendations("medicina", "investigación")
		assert.Equal(t, "medicina", rec.Category)
		assert.Equal(t, "investigación", rec.Scenario)
		assert.NotEmpty(t, rec.Tips)
		assert.NotEmpty(t, rec.RelatedSubjects)
	})

	t.Run("unknown category yields empty bundle", func(t *testing.T) {
		rec := engine.Recommendations("astrofisica", "investigación")
		assert.Empty(t, rec.Tips)
		assert.Empty(t, rec.RelatedSubjects)
		assert.Empty(t, rec.TypicalProducts)
		assert.NotNil(t, rec.Tips)
	})
}

func TestEngineMatchBooks(t *testing.T) {
	ctx := context.Background()
	base := knowledge.DefaultBase()

	t.Run("unknown category warns and returns empty", func(t *testing.T) {
		engine, err := NewEngine(ctx, base, nil)
		require.NoError(t, err)
		defer engine.Release()

		items := []catalog.Item{{ID: "1", Name: "Anatomía"}}
		matched := engine.MatchBooks(ctx, items, "astrofisica")
		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("empty items returns empty without error", func(t *testing.T) {
		engine, err := NewEngine(ctx, base, nil)
		require.NoError(t, err)
		defer engine.Release()

		matched := engine.MatchBooks(ctx, nil, "medicina")
		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("rule-only path matches keywords", func(t *testing.T) {
		engine, err := NewEngine(ctx, base, nil)
		require.NoError(t, err)
		defer engine.Release()

		items := []catalog.Item{
			{ID: "1", Name: "Derecho constitucional"},
			{ID: "2", Name: "Anatomía humana"},
		}
		matched := engine.MatchBooks(ctx, items, "medicina")
		require.Len(t, matched, 1)
		assert.Equal(t, "2", matched[0].ID)
	})

	t.Run("cache skips repeat item embeddings", func(t *testing.T) {
		cache, err := badger.NewMemoryCache()
		require.NoError(t, err)
		defer cache.Close()

		embedCalls := make(map[string]int)
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			embedCalls[text]++
			return []float32{1, 0, 0}, nil
		}
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			vectors := make([][]float32, len(texts))
			for i := range texts {
				vectors[i] = []float32{1, 0, 0}
			}
			return vectors, nil
		}

		engine, err := NewEngine(ctx, base, embedder, WithVectorCache(cache), WithPoolSize(1))
		require.NoError(t, err)
		defer engine.Release()
		require.True(t, engine.VectorMode())

		items := []catalog.Item{{ID: "42", Name: "Tratado de medicina interna"}}
		first := engine.MatchBooks(ctx, items, "medicina")
		second := engine.MatchBooks(ctx, items, "medicina")
		assert.Equal(t, first, second)
		assert.Equal(t, 1, embedCalls["Tratado de medicina interna"])
	})
}
