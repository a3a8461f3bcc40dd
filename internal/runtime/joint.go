package runtime

import (
	"fmt"
	"math"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Joint is the full joint distribution of a network: one probability per
// assignment of every variable, rows in canonical variable order.
type Joint struct {
	rows  []domain.Row
	probs []float64
}

// Len returns the number of enumerated assignments.
func (j *Joint) Len() int {
	return len(j.rows)
}

// Row returns the i-th assignment row. The returned slice must not be mutated.
func (j *Joint) Row(i int) domain.Row {
	return j.rows[i]
}

// Prob returns the joint probability of the i-th assignment.
func (j *Joint) Prob(i int) float64 {
	return j.probs[i]
}

// Sum returns the total mass, ~1 for a well-formed network.
func (j *Joint) Sum() float64 {
	total := 0.0
	for _, p := range j.probs {
		total += p
	}
	return total
}

// buildJoint materializes the joint distribution by enumerating the Cartesian
// product of every variable's domain in canonical order. Cost is the product
// of domain sizes; this exponential blowup is the accepted scaling limit of
// enumeration inference.
func buildJoint(net *domain.Network) (*Joint, error) {
	vars := net.Variables()
	if len(vars) == 0 {
		return nil, fmt.Errorf("network has no variables")
	}

	count := 1
	for _, v := range vars {
		count *= len(v.Domain())
	}

	joint := &Joint{
		rows:  make([]domain.Row, 0, count),
		probs: make([]float64, 0, count),
	}

	row := make(domain.Row, len(vars))
	if err := enumerate(vars, 0, row, joint); err != nil {
		return nil, err
	}

	// Normalization guards against floating-point drift only; a structurally
	// broken network fails inside enumerate, never silently here.
	total := joint.Sum()
	if total == 0 {
		return nil, fmt.Errorf("joint distribution: %w", domain.ErrZeroTotalProbability)
	}
	if math.Abs(total-1) > 1e-6 {
		return nil, fmt.Errorf("joint distribution sums to %v: %w", total, domain.ErrInvalidProbability)
	}
	for i := range joint.probs {
		joint.probs[i] /= total
	}
	return joint, nil
}

func enumerate(vars []*domain.Variable, depth int, row domain.Row, joint *Joint) error {
	if depth == len(vars) {
		p, err := rowProbability(vars, row)
		if err != nil {
			return err
		}
		joint.rows = append(joint.rows, row.Clone())
		joint.probs = append(joint.probs, p)
		return nil
	}
	for _, outcome := range vars[depth].Domain() {
		row[depth] = outcome
		if err := enumerate(vars, depth+1, row, joint); err != nil {
			return err
		}
	}
	return nil
}

// rowProbability multiplies, over all variables in order, the probability of
// the variable's assigned value given its parents' values from the same row.
func rowProbability(vars []*domain.Variable, row domain.Row) (float64, error) {
	p := 1.0
	for i, v := range vars {
		parentRow := make(domain.Row, 0, len(v.Parents()))
		for _, pi := range v.Parents() {
			parentRow = append(parentRow, row[pi])
		}
		dist, err := v.Conditional(parentRow)
		if err != nil {
			return 0, err
		}
		mass, ok := dist[row[i]]
		if !ok {
			// The outcome exists in the variable's domain (some row emits it)
			// but this conditional row has no entry for it. The engine does
			// not assume zero mass: an incomplete row is a configuration
			// error and must surface.
			return 0, fmt.Errorf("variable %q: outcome %s absent from row %s distribution: %w",
				v.Name(), row[i], parentRow, domain.ErrMissingConditionalRow)
		}
		p *= mass
	}
	return p, nil
}
