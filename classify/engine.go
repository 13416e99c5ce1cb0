package classify

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/librarium/ai"
	"github.com/poiesic/librarium/catalog"
	"github.com/poiesic/librarium/knowledge"
	"github.com/poiesic/librarium/storage"
)

// Default thresholds for classification and book matching.
const (
	DefaultClassifyThreshold = 0.3
	DefaultMatchThreshold    = 0.25
)

// Engine classifies academic queries and retrieves relevant catalog items.
// Built once at startup and read-only afterwards; safe for concurrent use.
type Engine struct {
	base     *knowledge.Base
	strategy MatchStrategy
	pool     *ants.Pool
	cache    storage.VectorCache
	logger   *slog.Logger

	classifyThreshold float64
	matchThreshold    float64
	vectorMode        bool
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for embedding calls.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithVectorCache sets an optional cache for item embeddings. The engine
// uses the cache but does not own it; closing it stays with the caller.
func WithVectorCache(cache storage.VectorCache) Option {
	return func(e *Engine) error {
		e.cache = cache
		return nil
	}
}

// WithClassifyThreshold sets the default similarity threshold for Classify.
func WithClassifyThreshold(threshold float64) Option {
	return func(e *Engine) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		e.classifyThreshold = threshold
		return nil
	}
}

// WithMatchThreshold sets the default similarity threshold for MatchBooks.
func WithMatchThreshold(threshold float64) Option {
	return func(e *Engine) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		e.matchThreshold = threshold
		return nil
	}
}

// NewEngine builds the engine. The knowledge base is validated first and a
// structural defect aborts construction; it is the only fatal condition.
//
// The embedder is optional. With a nil embedder, or when building the
// category embedding store fails, the engine logs once and runs rule-only
// for the process lifetime. It never retries the backend.
func NewEngine(ctx context.Context, base *knowledge.Base, embedder ai.Embedder, opts ...Option) (*Engine, error) {
	if base == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		base:              base,
		pool:              pool,
		logger:            slog.Default(),
		classifyThreshold: DefaultClassifyThreshold,
		matchThreshold:    DefaultMatchThreshold,
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	rule := NewRuleStrategy(base, e.logger)

	if embedder == nil {
		e.logger.Info("no embedding backend configured, running rule-only")
		e.strategy = rule
		e.pool.Release()
		e.pool = nil
		return e, nil
	}

	pooled := &poolEmbedder{inner: embedder, pool: e.pool}
	store, err := BuildEmbeddingStore(ctx, base, pooled)
	if err != nil {
		e.logger.Error("embedding backend unavailable, running rule-only", "err", err)
		e.strategy = rule
		e.pool.Release()
		e.pool = nil
		return e, nil
	}

	e.strategy = NewVectorStrategy(store, pooled, e.cache, rule, e.logger)
	e.vectorMode = true
	e.logger.Info("category embedding store built", "categories", store.Len())
	return e, nil
}

// VectorMode reports whether the engine classifies with embeddings. False
// means the embedding backend was unavailable at startup.
func (e *Engine) VectorMode() bool {
	return e.vectorMode
}

// Base returns the engine's knowledge base.
func (e *Engine) Base() *knowledge.Base {
	return e.base
}

// Classify maps a query to (category, confidence) using the engine's
// default threshold. An empty category means no match cleared the
// threshold; the confidence still carries the best score for near-miss
// logging by callers.
func (e *Engine) Classify(ctx context.Context, query string) (string, float64) {
	return e.ClassifyWithThreshold(ctx, query, e.classifyThreshold)
}

// ClassifyWithThreshold is Classify with an explicit similarity threshold.
// Identical input against the same backend state yields identical output.
func (e *Engine) ClassifyWithThreshold(ctx context.Context, query string, threshold float64) (string, float64) {
	category, confidence := e.strategy.Classify(ctx, query, threshold)
	return category, clamp01(confidence)
}

// DetectScenario returns the first scenario whose keywords match the query,
// in knowledge-base order, or "" when none match. Scenario signals are
// short closed-vocabulary phrases, so this path is substring-only.
func (e *Engine) DetectScenario(query string) string {
	lowered := strings.ToLower(query)
	for i := range e.base.Scenarios {
		if containsAny(lowered, e.base.Scenarios[i].Keywords) {
			return e.base.Scenarios[i].ID
		}
	}
	return ""
}

// Recommendations assembles the recommendation bundle for a category and
// optional scenario. Advisory: unknown identifiers yield empty lists, never
// an error.
func (e *Engine) Recommendations(category, scenario string) knowledge.Recommendation {
	return e.base.Recommend(category, scenario)
}

// MatchBooks returns the catalog items most relevant to a category using
// the engine's default threshold, capped at 5. The input slice and its
// items are never mutated.
func (e *Engine) MatchBooks(ctx context.Context, items []catalog.Item, category string) []catalog.Item {
	return e.MatchBooksWithThreshold(ctx, items, category, e.matchThreshold)
}

// MatchBooksWithThreshold is MatchBooks with an explicit threshold. An
// unknown category logs a warning and returns an empty slice.
func (e *Engine) MatchBooksWithThreshold(ctx context.Context, items []catalog.Item, category string, threshold float64) []catalog.Item {
	cat := e.base.Category(category)
	if cat == nil {
		e.logger.Warn("unknown category requested", "category", category)
		return []catalog.Item{}
	}
	if len(items) == 0 {
		return []catalog.Item{}
	}
	return e.strategy.MatchBooks(ctx, items, cat, threshold)
}

// Release frees the embedding worker pool. The engine should not be used
// after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
		e.pool = nil
	}
}
