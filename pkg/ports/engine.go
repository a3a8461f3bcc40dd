package ports

import (
	"context"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Asker defines the interface for inference cores. This is the primary
// interface used by driving adapters (HTTP, MCP, CLI) so they never depend on
// the concrete engine.
type Asker interface {
	// Ask computes the posterior distribution of the query variable given the
	// evidence. It fails with domain.ErrUnknownVariable for unresolved names
	// and domain.ErrZeroTotalProbability for contradictory evidence.
	Ask(ctx context.Context, query string, evidence domain.Evidence) (domain.Distribution, error)

	// Network returns the immutable network the engine answers queries about,
	// for introspection and visualization tools.
	Network() *domain.Network
}
