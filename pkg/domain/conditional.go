package domain

import (
	"fmt"
	"sort"
)

// ConditionalTable maps a row of parent values to the distribution of the
// variable's own outcomes given those values (a CPT). Rows are supplied
// explicitly; lookups for unsupplied rows fail rather than default.
type ConditionalTable struct {
	arity   int
	entries map[string]tableEntry
}

type tableEntry struct {
	row  Row
	dist Distribution
}

// NewConditionalTable creates an empty table for a variable with the given
// parent count.
func NewConditionalTable(arity int) *ConditionalTable {
	return &ConditionalTable{
		arity:   arity,
		entries: make(map[string]tableEntry),
	}
}

// Arity returns the parent count the table was built for.
func (t *ConditionalTable) Arity() int {
	return t.arity
}

// Len returns the number of supplied rows.
func (t *ConditionalTable) Len() int {
	return len(t.entries)
}

// Put stores the distribution for a parent-value row, normalizing it first.
// Supplying the same row twice replaces the earlier distribution (last write
// wins). The row length must match the table arity.
func (t *ConditionalTable) Put(row Row, dist Distribution) error {
	if len(row) != t.arity {
		return fmt.Errorf("row %s has %d values, table expects %d", row, len(row), t.arity)
	}
	if len(dist) == 0 {
		return fmt.Errorf("row %s: empty distribution", row)
	}
	normalized, err := dist.Normalize()
	if err != nil {
		return fmt.Errorf("row %s: %w", row, err)
	}
	t.entries[row.Key()] = tableEntry{row: row.Clone(), dist: normalized}
	return nil
}

// Lookup retrieves the distribution for a parent-value row. It fails with
// ErrMissingConditionalRow when the row was never supplied.
func (t *ConditionalTable) Lookup(row Row) (Distribution, error) {
	if len(row) != t.arity {
		return nil, fmt.Errorf("row %s has %d values, table expects %d: %w",
			row, len(row), t.arity, ErrMissingConditionalRow)
	}
	entry, ok := t.entries[row.Key()]
	if !ok {
		return nil, fmt.Errorf("row %s: %w", row, ErrMissingConditionalRow)
	}
	return entry.dist, nil
}

// Rows returns the supplied rows in deterministic (encoded-key) order.
func (t *ConditionalTable) Rows() []Row {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = t.entries[k].row
	}
	return rows
}

// outcomes returns the union of outcome values across every row's
// distribution, in deterministic order. This is the owning variable's domain.
func (t *ConditionalTable) outcomes() []Outcome {
	seen := make(map[Outcome]struct{})
	for _, e := range t.entries {
		for o := range e.dist {
			seen[o] = struct{}{}
		}
	}
	out := make([]Outcome, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
