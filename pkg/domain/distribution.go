package domain

import (
	"fmt"
	"math"
	"sort"
)

// ProbabilityTolerance is the relative tolerance for "sums to 1" checks.
const ProbabilityTolerance = 1e-9

// Distribution maps each outcome of a variable to its probability mass.
// A well-formed distribution has values in [0,1] summing to 1 within
// ProbabilityTolerance; Normalize produces that form from raw weights.
type Distribution map[Outcome]float64

// NewBinary is the binary shorthand: p denotes {true: p, false: 1-p}.
func NewBinary(p float64) Distribution {
	return Distribution{True: p, False: 1 - p}
}

// Normalize returns a new distribution whose values are divided by the total
// weight. It fails with ErrZeroTotalProbability when the weights sum to zero
// and with ErrInvalidProbability when a weight is negative or a normalized
// value escapes [0,1].
func (d Distribution) Normalize() (Distribution, error) {
	total := 0.0
	for o, w := range d {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("weight %v for outcome %s: %w", w, o, ErrInvalidProbability)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrZeroTotalProbability
	}

	out := make(Distribution, len(d))
	for o, w := range d {
		out[o] = w / total
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks the normalized-distribution invariant: every value lies in
// [0,1] and the values sum to 1 within ProbabilityTolerance.
func (d Distribution) Validate() error {
	sum := 0.0
	for o, p := range d {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("probability %v for outcome %s: %w", p, o, ErrInvalidProbability)
		}
		sum += p
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("probabilities sum to %v, want 1: %w", sum, ErrInvalidProbability)
	}
	return nil
}

// Outcomes returns the outcomes of the distribution in deterministic order.
func (d Distribution) Outcomes() []Outcome {
	out := make([]Outcome, 0, len(d))
	for o := range d {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for o, p := range d {
		out[o] = p
	}
	return out
}

// Equal reports whether two distributions assign the same mass to the same
// outcomes within the given tolerance.
func (d Distribution) Equal(other Distribution, tolerance float64) bool {
	if len(d) != len(other) {
		return false
	}
	for o, p := range d {
		q, ok := other[o]
		if !ok || math.Abs(p-q) > tolerance {
			return false
		}
	}
	return true
}
