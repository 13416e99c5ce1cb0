// Package mock provides a test double for the ai.Embedder interface.
//
// MockEmbedder produces deterministic vectors derived from the input text,
// so similarity-based assertions are stable across runs without any external
// embedding service. Behavior can be overridden per test via function
// fields, which is also how embedding failures are simulated:
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("backend down")
//	}
package mock
