package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-toml-selector/models"
)

// memoryNodeCache keeps node cache entries in process memory. It is the
// default when no database is configured.
type memoryNodeCache struct {
	mu      sync.RWMutex
	entries map[string]models.NodeCacheEntry
	now     func() time.Time
}

// NewMemoryNodeCache returns an empty in-memory [NodeCacheRepository].
func NewMemoryNodeCache() NodeCacheRepository {
	return &memoryNodeCache{
		entries: make(map[string]models.NodeCacheEntry),
		now:     time.Now,
	}
}

func (c *memoryNodeCache) Save(ctx context.Context, entry models.NodeCacheEntry) error {
	if entry.NodeID == "" {
		return ErrEmptyNodeID
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = c.now().UTC()
	}

	c.mu.Lock()
	c.entries[entry.NodeID] = entry
	c.mu.Unlock()
	return nil
}

func (c *memoryNodeCache) Get(ctx context.Context, nodeID string) (models.NodeCacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[nodeID]
	c.mu.RUnlock()

	if !ok {
		return models.NodeCacheEntry{}, ErrNodeCacheEntryNotFound
	}
	return entry, nil
}

func (c *memoryNodeCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
	return nil
}
