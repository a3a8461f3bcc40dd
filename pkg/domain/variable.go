package domain

import "fmt"

// Variable is a node of the network: a name, an ordered list of parents and a
// conditional probability table. Variables are created through Network.Add and
// are immutable afterwards.
type Variable struct {
	name    string
	index   int
	owner   *Network
	parents []int
	table   *ConditionalTable
	domain  []Outcome
}

// Name returns the unique variable name.
func (v *Variable) Name() string {
	return v.name
}

// Parents returns the canonical indices of the variable's parents, in the
// order the parent list was declared.
func (v *Variable) Parents() []int {
	out := make([]int, len(v.parents))
	copy(out, v.parents)
	return out
}

// ParentNames returns the parent names in declaration order.
func (v *Variable) ParentNames() []string {
	out := make([]string, len(v.parents))
	for i, idx := range v.parents {
		out[i] = v.owner.vars[idx].name
	}
	return out
}

// Domain returns the variable's outcome domain: the union of outcomes across
// every row of its conditional table, computed once at construction.
func (v *Variable) Domain() []Outcome {
	out := make([]Outcome, len(v.domain))
	copy(out, v.domain)
	return out
}

// Table exposes the variable's conditional table.
func (v *Variable) Table() *ConditionalTable {
	return v.table
}

// Conditional returns the distribution of the variable given a row of parent
// values in parent order. It fails when the row was never supplied.
func (v *Variable) Conditional(parentValues Row) (Distribution, error) {
	dist, err := v.table.Lookup(parentValues)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", v.name, err)
	}
	return dist, nil
}

// Prior is the zero-parent convenience: the variable's unconditional
// distribution. It fails for variables with parents.
func (v *Variable) Prior() (Distribution, error) {
	if len(v.parents) != 0 {
		return nil, fmt.Errorf("variable %q has %d parents, no unconditional prior", v.name, len(v.parents))
	}
	return v.Conditional(nil)
}
