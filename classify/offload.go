package classify

import (
	"context"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/librarium/ai"
)

// poolEmbedder runs embedding calls on a bounded worker pool. Embedding is
// the only potentially CPU-heavy work in a request, so capping its
// parallelism keeps one slow inference from starving unrelated requests.
// The calling goroutine still blocks on its own result.
type poolEmbedder struct {
	inner ai.Embedder
	pool  *ants.Pool
}

var _ ai.Embedder = (*poolEmbedder)(nil)

type embedResult struct {
	vector []float32
	err    error
}

type embedBatchResult struct {
	vectors [][]float32
	err     error
}

func (p *poolEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if p.pool == nil {
		return p.inner.EmbedText(ctx, text)
	}

	done := make(chan embedResult, 1)
	if err := p.pool.Submit(func() {
		vec, err := p.inner.EmbedText(ctx, text)
		done <- embedResult{vector: vec, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case r := <-done:
		return r.vector, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *poolEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if p.pool == nil {
		return p.inner.EmbedTexts(ctx, texts)
	}

	done := make(chan embedBatchResult, 1)
	if err := p.pool.Submit(func() {
		vecs, err := p.inner.EmbedTexts(ctx, texts)
		done <- embedBatchResult{vectors: vecs, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case r := <-done:
		return r.vectors, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
