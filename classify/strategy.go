package classify

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/librarium/ai"
	"github.com/poiesic/librarium/catalog"
	"github.com/poiesic/librarium/knowledge"
	"github.com/poiesic/librarium/storage"
)

const (
	// ruleConfidence is the fixed confidence reported for rule-based
	// classification hits. Substring matches are precise but carry no
	// similarity signal, so every hit scores the same.
	ruleConfidence = 0.8

	// maxMatches caps the number of items returned by book matching.
	maxMatches = 5
)

// MatchStrategy scores queries and catalog items against categories. The
// engine selects one strategy at construction; implementations never return
// errors, they degrade.
type MatchStrategy interface {
	// Classify maps a query to a category identifier and confidence.
	// An empty identifier means no category cleared the threshold; the
	// confidence still reports the best score seen.
	Classify(ctx context.Context, query string, threshold float64) (string, float64)

	// MatchBooks returns the items most relevant to the category, at most
	// maxMatches of them. The input slice is never mutated.
	MatchBooks(ctx context.Context, items []catalog.Item, category *knowledge.Category, threshold float64) []catalog.Item
}

// RuleStrategy classifies and filters by case-insensitive substring
// matching. It is the permanent strategy when no embedding backend is
// available and the per-call fallback when one fails.
type RuleStrategy struct {
	base   *knowledge.Base
	logger *slog.Logger
}

var _ MatchStrategy = (*RuleStrategy)(nil)

// NewRuleStrategy creates a rule-based strategy over the knowledge base.
func NewRuleStrategy(base *knowledge.Base, logger *slog.Logger) *RuleStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleStrategy{base: base, logger: logger}
}

// Classify walks the rule list in priority order and returns the first
// rule whose keyword set matches the query. The threshold is ignored: rule
// hits always score ruleConfidence and misses score zero.
func (s *RuleStrategy) Classify(ctx context.Context, query string, threshold float64) (string, float64) {
	lowered := strings.ToLower(query)
	for i := range s.base.Rules {
		if containsAny(lowered, s.base.Rules[i].Keywords) {
			return s.base.Rules[i].Category, ruleConfidence
		}
	}
	return "", 0
}

// MatchBooks keeps items whose representative text contains any of the
// category's keywords, in original order. The rule path has no score to
// rank by, so relative order is preserved.
func (s *RuleStrategy) MatchBooks(ctx context.Context, items []catalog.Item, category *knowledge.Category, threshold float64) []catalog.Item {
	matched := make([]catalog.Item, 0, maxMatches)
	for _, item := range items {
		text := strings.ToLower(item.RepresentativeText())
		if text == "" {
			continue
		}
		if containsAny(text, category.Keywords) {
			matched = append(matched, item)
			if len(matched) == maxMatches {
				break
			}
		}
	}
	return matched
}

// containsAny reports whether lowered contains any keyword,
// case-insensitively. The haystack must already be lowercased.
func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// VectorStrategy classifies and ranks by cosine similarity against the
// category embedding store, falling back to its rule strategy for the
// single call on which an embedding fails.
type VectorStrategy struct {
	store    *EmbeddingStore
	embedder ai.Embedder
	cache    storage.VectorCache
	fallback *RuleStrategy
	logger   *slog.Logger
}

var _ MatchStrategy = (*VectorStrategy)(nil)

// NewVectorStrategy creates a vector strategy. The cache is optional; the
// fallback is not, every vector strategy degrades to rules.
func NewVectorStrategy(store *EmbeddingStore, embedder ai.Embedder, cache storage.VectorCache, fallback *RuleStrategy, logger *slog.Logger) *VectorStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &VectorStrategy{
		store:    store,
		embedder: embedder,
		cache:    cache,
		fallback: fallback,
		logger:   logger,
	}
}

// Classify embeds the query and scores it against every category vector in
// store order, keeping the first maximum so ties resolve deterministically
// to the earlier-declared category.
func (s *VectorStrategy) Classify(ctx context.Context, query string, threshold float64) (string, float64) {
	if strings.TrimSpace(query) == "" {
		return s.fallback.Classify(ctx, query, threshold)
	}

	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil || len(queryVec) == 0 {
		s.logger.Warn("query embedding failed, falling back to rules", "err", err)
		return s.fallback.Classify(ctx, query, threshold)
	}

	var best string
	var bestScore float64
	for _, id := range s.store.Categories() {
		categoryVec, _ := s.store.Vector(id)
		if score := Cosine(queryVec, categoryVec); score > bestScore {
			bestScore = score
			best = id
		}
	}

	if bestScore >= threshold {
		return best, bestScore
	}
	// Below threshold: no category, but still report the near-miss score.
	return "", bestScore
}

// MatchBooks embeds each item's representative text and keeps those whose
// similarity to the category vector clears the threshold, ranked by score.
// Scores are attached to private copies only; returned items are
// indistinguishable in shape from the input.
func (s *VectorStrategy) MatchBooks(ctx context.Context, items []catalog.Item, category *knowledge.Category, threshold float64) []catalog.Item {
	categoryVec, ok := s.store.Vector(category.ID)
	if !ok {
		return s.fallback.MatchBooks(ctx, items, category, threshold)
	}

	type scoredItem struct {
		item  catalog.Item
		score float64
	}

	kept := make([]scoredItem, 0, len(items))
	for _, item := range items {
		text := item.RepresentativeText()
		if text == "" {
			continue
		}
		itemVec, err := s.embedItem(ctx, item.ID, text)
		if err != nil {
			s.logger.Warn("item embedding failed, falling back to rules",
				"itemID", item.ID, "err", err)
			return s.fallback.MatchBooks(ctx, items, category, threshold)
		}
		if score := Cosine(itemVec, categoryVec); score >= threshold {
			kept = append(kept, scoredItem{item: item, score: score})
		}
	}

	// Stable sort keeps original relative order among equal scores.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	if len(kept) > maxMatches {
		kept = kept[:maxMatches]
	}

	matched := make([]catalog.Item, len(kept))
	for i := range kept {
		matched[i] = kept[i].item
	}
	return matched
}

// embedItem returns the embedding for an item's text, consulting the vector
// cache when one is configured. Cache failures are logged and absorbed; only
// embedding failures propagate.
func (s *VectorStrategy) embedItem(ctx context.Context, itemID, text string) ([]float32, error) {
	if s.cache == nil || itemID == "" {
		return s.embedder.EmbedText(ctx, text)
	}

	hash := storage.HashText(text)
	vec, hit, err := s.cache.Get(ctx, itemID, hash)
	if err != nil {
		s.logger.Warn("vector cache read failed", "itemID", itemID, "err", err)
	} else if hit {
		return vec, nil
	}

	vec, err = s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, itemID, hash, vec); err != nil {
		s.logger.Warn("vector cache write failed", "itemID", itemID, "err", err)
	}
	return vec, nil
}
