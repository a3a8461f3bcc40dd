package ports

import (
	"context"

	"github.com/aretw0/bayeux/pkg/domain"
)

// NetworkLoader defines how the engine obtains a network definition.
// This allows the source (YAML document, in-memory builder) to be decoupled.
type NetworkLoader interface {
	// Load builds the network. Implementations must return a fully constructed
	// network or an error; partially built networks are never returned.
	Load(ctx context.Context) (*domain.Network, error)
}
