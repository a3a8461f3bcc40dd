package bayeux

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/aretw0/bayeux/internal/runtime"
	"github.com/aretw0/bayeux/pkg/adapters/yamlfile"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
)

// Version is the library version, overridable at build time via -ldflags.
var Version = "dev"

// Engine is the high-level entry point for the Bayeux library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	asker   ports.Asker
	loader  ports.NetworkLoader
	network *domain.Network
	cache   ports.PosteriorCache
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom NetworkLoader, bypassing the default YAML file loader.
func WithLoader(l ports.NetworkLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithNetwork injects an already-built network, skipping loading entirely.
func WithNetwork(net *domain.Network) Option {
	return func(e *Engine) {
		e.network = net
	}
}

// WithCache enables posterior caching through the given store.
func WithCache(cache ports.PosteriorCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Bayeux Engine.
// By default, it loads the network from the YAML file at the given path.
// If WithLoader or WithNetwork is provided, path can be empty and the file
// loader is skipped.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply options first to check if a loader or network is provided
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which
	// would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if eng.network == nil {
		// If no loader was injected, initialize the default YAML adapter
		if eng.loader == nil {
			if path == "" {
				return nil, fmt.Errorf("path is required when no custom loader or network is provided")
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("invalid path: %w", err)
			}

			eng.Name = filepath.Base(absPath)
			eng.loader = yamlfile.NewLoader(absPath, yamlfile.WithLogger(eng.logger))
		} else if path != "" {
			// Custom loader: use path as a descriptive label only.
			eng.Name = filepath.Base(path)
		}

		net, err := eng.loader.Load(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load network: %w", err)
		}
		eng.network = net
	}

	// Enrich logger with network name if available
	if eng.Name != "" {
		eng.logger = eng.logger.With("network", eng.Name)
	}

	eng.runtime = runtime.NewEngine(eng.network, runtime.WithLogger(eng.logger))
	eng.asker = eng.runtime
	if eng.cache != nil {
		eng.asker = runtime.NewCachedAsker(eng.runtime, eng.cache, eng.logger)
	}

	return eng, nil
}

// Ask computes the posterior distribution of the query variable given the
// evidence. Evidence may be nil or empty, in which case the marginal prior
// of the query variable is returned.
func (e *Engine) Ask(ctx context.Context, query string, evidence domain.Evidence) (domain.Distribution, error) {
	return e.asker.Ask(ctx, query, evidence)
}

// Network returns the loaded network for inspection or visualization tools.
func (e *Engine) Network() *domain.Network {
	return e.network
}

// Asker returns the query surface in use, cached when a cache was configured.
// Useful for embedding the engine behind transports that accept the port.
func (e *Engine) Asker() ports.Asker {
	return e.asker
}

// Sample draws a single outcome from the distribution using the given source
// of randomness.
func (e *Engine) Sample(dist domain.Distribution, rng *rand.Rand) (domain.Outcome, error) {
	return runtime.Sample(dist, rng)
}

// Loader returns the underlying NetworkLoader used by the engine, nil when
// the network was injected directly.
func (e *Engine) Loader() ports.NetworkLoader {
	return e.loader
}
