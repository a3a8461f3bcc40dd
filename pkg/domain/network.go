package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Network is an append-only arena of Variables in parent-before-child order.
// The order of Add calls fixes the canonical variable ordering used for joint
// assignment rows; callers are responsible for adding parents first (the
// engine checks membership, not acyclicity). After construction the network
// is immutable and safe for concurrent queries.
type Network struct {
	vars   []*Variable
	byName map[string]int
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{byName: make(map[string]int)}
}

// Add appends a new variable whose parents are resolved by name against
// previously added variables. It fails with ErrUnknownVariable when a parent
// name has not been added yet, which also enforces topological insertion.
func (n *Network) Add(name string, parentNames []string, table *ConditionalTable) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("variable name must not be empty")
	}
	if _, exists := n.byName[name]; exists {
		return nil, fmt.Errorf("variable %q already added", name)
	}
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("variable %q: conditional table has no rows", name)
	}
	if table.Arity() != len(parentNames) {
		return nil, fmt.Errorf("variable %q: table arity %d does not match %d parents",
			name, table.Arity(), len(parentNames))
	}

	parents := make([]int, len(parentNames))
	for i, pname := range parentNames {
		idx, ok := n.byName[pname]
		if !ok {
			return nil, fmt.Errorf("variable %q: parent %q: %w", name, pname, ErrUnknownVariable)
		}
		parents[i] = idx
	}

	domain := table.outcomes()
	if len(domain) == 0 {
		return nil, fmt.Errorf("variable %q: empty outcome domain", name)
	}

	v := &Variable{
		name:    name,
		index:   len(n.vars),
		owner:   n,
		parents: parents,
		table:   table,
		domain:  domain,
	}
	n.vars = append(n.vars, v)
	n.byName[name] = v.index
	return v, nil
}

// Lookup returns the variable for a name.
func (n *Network) Lookup(name string) (*Variable, error) {
	idx, ok := n.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}
	return n.vars[idx], nil
}

// Index returns the position of a variable in the canonical order. It fails
// with ErrVariableNotInNetwork when the variable belongs to another network,
// guarding against cross-network misuse.
func (n *Network) Index(v *Variable) (int, error) {
	if v == nil || v.owner != n {
		name := "<nil>"
		if v != nil {
			name = v.name
		}
		return 0, fmt.Errorf("%q: %w", name, ErrVariableNotInNetwork)
	}
	return v.index, nil
}

// Variables returns the network members in canonical order.
func (n *Network) Variables() []*Variable {
	out := make([]*Variable, len(n.vars))
	copy(out, n.vars)
	return out
}

// Len returns the number of variables.
func (n *Network) Len() int {
	return len(n.vars)
}

// Fingerprint returns a stable digest of the network definition (names,
// parent lists, CPT rows and masses). Used as a cache-key component: equal
// definitions share cached posteriors across processes.
func (n *Network) Fingerprint() string {
	h := sha256.New()
	for _, v := range n.vars {
		fmt.Fprintf(h, "v:%s|p:%s\n", v.name, strings.Join(v.ParentNames(), ","))
		for _, row := range v.table.Rows() {
			dist, _ := v.table.Lookup(row)
			fmt.Fprintf(h, "r:%s=", row.Key())
			for _, o := range dist.Outcomes() {
				fmt.Fprintf(h, "%s:%.12g,", o.Key(), dist[o])
			}
			fmt.Fprintln(h)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Evidence fixes observed variables to outcomes, keyed by variable name.
// Names keep evidence handles stable across copies of the same definition.
type Evidence map[string]Outcome

// Clone returns an independent copy of the evidence map.
func (e Evidence) Clone() Evidence {
	out := make(Evidence, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
