package memory

import (
	"context"
	"sync"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Cache implements ports.PosteriorCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]domain.Distribution
	mu   sync.RWMutex
}

// NewCache creates a new in-memory posterior cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]domain.Distribution),
	}
}

// Put stores a posterior under the key.
func (c *Cache) Put(ctx context.Context, key string, dist domain.Distribution) error {
	// Copy on write so the caller can't mutate the cached entry by reference.
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = dist.Clone()
	return nil
}

// Get retrieves a cached posterior.
func (c *Cache) Get(ctx context.Context, key string) (domain.Distribution, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dist, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy on read for the same isolation reason.
	return dist.Clone(), true, nil
}

// Delete removes the entry for the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Len returns the number of cached posteriors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
