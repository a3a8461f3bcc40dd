package runtime

import (
	"context"
	"log/slog"

	"github.com/aretw0/bayeux/internal/logging"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
)

// CachedAsker wraps an engine with a posterior cache. Cache failures degrade
// to a plain computation and are logged, never surfaced: the cache is an
// optimization, not a dependency.
type CachedAsker struct {
	engine *Engine
	cache  ports.PosteriorCache
	logger *slog.Logger
}

// NewCachedAsker wraps the engine with the cache.
func NewCachedAsker(engine *Engine, cache ports.PosteriorCache, logger *slog.Logger) *CachedAsker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &CachedAsker{engine: engine, cache: cache, logger: logger}
}

// Network returns the underlying engine's network.
func (c *CachedAsker) Network() *domain.Network {
	return c.engine.Network()
}

// Ask answers from the cache when possible, computing and storing otherwise.
// Only successful posteriors are cached; errors always recompute.
func (c *CachedAsker) Ask(ctx context.Context, query string, evidence domain.Evidence) (domain.Distribution, error) {
	key := CacheKey(c.engine.Network(), query, evidence)

	if dist, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("posterior cache read failed", "err", err)
	} else if ok {
		c.logger.Debug("posterior cache hit", "query", query)
		return dist, nil
	}

	dist, err := c.engine.Ask(ctx, query, evidence)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, key, dist); err != nil {
		c.logger.Warn("posterior cache write failed", "err", err)
	}
	return dist, nil
}
