package ports

import (
	"context"

	"github.com/aretw0/bayeux/pkg/domain"
)

// PosteriorCache defines the interface for memoizing computed posteriors.
// Keys are opaque to implementations; the engine derives them from the
// network fingerprint, the query variable and the evidence, so staleness is
// impossible while a network is immutable.
//
// A cache is an optimization only: implementations may drop entries at any
// time and correctness never depends on a hit.
type PosteriorCache interface {
	// Get retrieves a cached posterior. The second return value reports
	// whether the key was present.
	Get(ctx context.Context, key string) (domain.Distribution, bool, error)

	// Put stores a posterior under the key, replacing any previous entry.
	Put(ctx context.Context, key string, dist domain.Distribution) error

	// Delete removes the entry for the key, if any.
	Delete(ctx context.Context, key string) error
}
