package classify

import (
	"context"
	"fmt"

	"github.com/poiesic/librarium/ai"
	"github.com/poiesic/librarium/knowledge"
)

// EmbeddingStore holds one reference vector per category. It is built once
// at engine construction and immutable afterwards. Category order is
// preserved from the knowledge base; it is the tie-break order for equal
// similarity scores.
type EmbeddingStore struct {
	ids     []string
	vectors map[string][]float32
}

// BuildEmbeddingStore embeds the representative text of every category in
// the base. Any failure leaves the caller without a store; the caller then
// operates rule-only, it does not retry.
func BuildEmbeddingStore(ctx context.Context, base *knowledge.Base, embedder ai.Embedder) (*EmbeddingStore, error) {
	texts := make([]string, len(base.Categories))
	for i := range base.Categories {
		texts[i] = base.Categories[i].RepresentativeText()
	}

	vectors, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVectorCountMismatch, len(vectors), len(texts))
	}

	store := &EmbeddingStore{
		ids:     make([]string, 0, len(base.Categories)),
		vectors: make(map[string][]float32, len(base.Categories)),
	}
	for i := range base.Categories {
		if len(vectors[i]) == 0 {
			return nil, fmt.Errorf("category %q: %w", base.Categories[i].ID, ErrEmptyVector)
		}
		store.ids = append(store.ids, base.Categories[i].ID)
		store.vectors[base.Categories[i].ID] = vectors[i]
	}
	return store, nil
}

// Categories returns the category identifiers in knowledge-base order.
// The returned slice must not be modified.
func (s *EmbeddingStore) Categories() []string {
	return s.ids
}

// Vector returns the reference vector for a category.
func (s *EmbeddingStore) Vector(category string) ([]float32, bool) {
	v, ok := s.vectors[category]
	return v, ok
}

// Len returns the number of stored category vectors.
func (s *EmbeddingStore) Len() int {
	return len(s.ids)
}
