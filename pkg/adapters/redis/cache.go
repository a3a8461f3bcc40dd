package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/bayeux/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.PosteriorCache using Redis, letting independent
// processes querying the same immutable network share computed posteriors.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached posteriors.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cache entries.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "bayeux:posterior:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Put stores a posterior as a JSON object keyed by encoded outcome.
func (c *Cache) Put(ctx context.Context, key string, dist domain.Distribution) error {
	payload := make(map[string]float64, len(dist))
	for o, p := range dist {
		payload[o.Key()] = p
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal posterior: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves a cached posterior. A missing key is a miss, not an error.
func (c *Cache) Get(ctx context.Context, key string) (domain.Distribution, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load from redis: %w", err)
	}

	var payload map[string]float64
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal posterior: %w", err)
	}

	dist := make(domain.Distribution, len(payload))
	for k, p := range payload {
		outcome, err := domain.ParseKey(k)
		if err != nil {
			return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
		}
		dist[outcome] = p
	}
	return dist, true, nil
}

// Delete removes the entry for the key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}
