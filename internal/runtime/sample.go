package runtime

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Sample draws a single outcome from a distribution: a uniform value in
// [0,1), then a walk over the outcomes in deterministic order accumulating
// mass until the cumulative sum meets the draw. The distribution must be
// normalized.
func Sample(dist domain.Distribution, rng *rand.Rand) (domain.Outcome, error) {
	if err := dist.Validate(); err != nil {
		return domain.Outcome{}, fmt.Errorf("sample: %w", err)
	}

	draw := rng.Float64()
	cumulative := 0.0
	outcomes := dist.Outcomes()
	for _, o := range outcomes {
		cumulative += dist[o]
		if cumulative >= draw {
			return o, nil
		}
	}
	// Floating-point shortfall at the tail; the last outcome absorbs it.
	return outcomes[len(outcomes)-1], nil
}
