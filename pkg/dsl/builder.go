package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Dist is the authoring form of a probability table: outcome value (bool or
// string) to weight. Weights need not sum to 1; they are normalized on build.
type Dist map[any]float64

// Binary is the scalar shorthand: p denotes {true: p, false: 1-p}.
func Binary(p float64) Dist {
	return Dist{true: p, false: 1 - p}
}

// RowSpec supplies the distribution for one parent-value combination.
type RowSpec struct {
	// Given holds the parent values in parent order. Empty for root variables.
	Given []any
	// Dist is the distribution of the variable's own outcomes for this row.
	Dist Dist
}

// CPT is the full authoring form of a conditional table: one RowSpec per
// parent-value combination. Supplying the same row twice keeps the last one.
type CPT []RowSpec

// Given collects parent values for a RowSpec. A single value covers the
// one-parent shorthand; multiple values form the general tuple case.
func Given(values ...any) []any {
	return values
}

// Prior is the zero-parent shorthand: a bare distribution as the only row.
func Prior(d Dist) CPT {
	return CPT{{Dist: d}}
}

type step struct {
	name    string
	parents []string
	cpt     CPT
}

// Builder accumulates variable definitions and compiles them into a network.
// Add calls chain; errors are deferred and reported by Build, first one wins.
type Builder struct {
	steps []step
}

// New creates a new network builder.
func New() *Builder {
	return &Builder{}
}

// Add appends a variable definition. Parents must have been added earlier
// (parent-before-child order is the caller's responsibility, checked on
// Build).
func (b *Builder) Add(name string, parents []string, cpt CPT) *Builder {
	b.steps = append(b.steps, step{name: name, parents: parents, cpt: cpt})
	return b
}

// Build compiles the accumulated definitions into an immutable network.
func (b *Builder) Build() (*domain.Network, error) {
	net := domain.NewNetwork()
	for _, s := range b.steps {
		table, err := compileCPT(s.cpt, len(s.parents))
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", s.name, err)
		}
		if _, err := net.Add(s.name, s.parents, table); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// Load implements ports.NetworkLoader, so a builder can be handed directly to
// the engine facade.
func (b *Builder) Load(ctx context.Context) (*domain.Network, error) {
	return b.Build()
}

func compileCPT(cpt CPT, arity int) (*domain.ConditionalTable, error) {
	table := domain.NewConditionalTable(arity)
	for _, spec := range cpt {
		row := make(domain.Row, 0, len(spec.Given))
		for _, v := range spec.Given {
			outcome, err := domain.OutcomeOf(v)
			if err != nil {
				return nil, fmt.Errorf("row value: %w", err)
			}
			row = append(row, outcome)
		}

		dist := make(domain.Distribution, len(spec.Dist))
		for k, w := range spec.Dist {
			outcome, err := domain.OutcomeOf(k)
			if err != nil {
				return nil, fmt.Errorf("outcome key: %w", err)
			}
			dist[outcome] = w
		}

		if err := table.Put(row, dist); err != nil {
			return nil, err
		}
	}
	return table, nil
}
