package storage

import "context"

// CacheEntry is a cached item embedding together with the content hash of
// the text it was computed from.
type CacheEntry struct {
	ContentHash uint64
	Vector      []float32
}

// VectorCache stores item embeddings keyed by item id and content hash.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// Get retrieves the cached vector for an item. The stored entry counts
	// as a hit only when its content hash matches contentHash; a stale
	// entry is treated as a miss. Returns (nil, false, nil) on a miss.
	Get(ctx context.Context, itemID string, contentHash uint64) ([]float32, bool, error)

	// Put stores the vector for an item, replacing any previous entry for
	// the same item id.
	Put(ctx context.Context, itemID string, contentHash uint64, vector []float32) error

	// Close closes the cache and releases resources.
	Close() error
}
