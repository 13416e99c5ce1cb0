package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/librarium/storage"
)

const itemVectorPrefix = "itemvec"

// makeItemVectorKey generates a key for an item's cached embedding.
func makeItemVectorKey(itemID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", itemVectorPrefix, itemID))
}

// VectorCache implements storage.VectorCache on top of a Badger backend.
type VectorCache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache creates a vector cache using the given backend.
func NewVectorCache(backend *Backend) (*VectorCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &VectorCache{
		backend: backend,
		logger:  slog.Default().With("component", "vector-cache"),
	}, nil
}

// Get retrieves the cached vector for an item. A missing key or a content
// hash mismatch both count as a miss.
func (c *VectorCache) Get(ctx context.Context, itemID string, contentHash uint64) ([]float32, bool, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, false, storage.ErrEmptyItemID
	}
	if c.backend.IsClosed() {
		return nil, false, storage.ErrStorageClosed
	}

	var entry *storage.CacheEntry
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeItemVectorKey(itemID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			entry, err = storage.UnmarshalEntry(val)
			return err
		})
	}, false)

	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if entry.ContentHash != contentHash {
		// Item content changed since the entry was written.
		c.logger.Debug("stale cache entry", "itemID", itemID)
		return nil, false, nil
	}
	return entry.Vector, true, nil
}

// Put stores the vector for an item, replacing any previous entry.
func (c *VectorCache) Put(ctx context.Context, itemID string, contentHash uint64, vector []float32) error {
	if strings.TrimSpace(itemID) == "" {
		return storage.ErrEmptyItemID
	}
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	data := storage.MarshalEntry(&storage.CacheEntry{
		ContentHash: contentHash,
		Vector:      vector,
	})
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeItemVectorKey(itemID), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *VectorCache) Close() error {
	return c.backend.Close()
}
