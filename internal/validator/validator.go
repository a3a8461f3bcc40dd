// Package validator audits a constructed network for authoring defects the
// engine would otherwise only surface lazily, mid-query: CPT rows missing for
// reachable parent combinations and rows whose distributions skip part of the
// variable's domain. Validation is opt-in; the engine itself stays strict on
// lookup.
package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/bayeux/pkg/domain"
)

// Issue is a single structural defect found in a network.
type Issue struct {
	Variable string
	Row      domain.Row
	Reason   string
}

func (e *Issue) Error() string {
	if len(e.Row) == 0 {
		return fmt.Sprintf("variable %q: %s", e.Variable, e.Reason)
	}
	return fmt.Sprintf("variable %q row %s: %s", e.Variable, e.Row, e.Reason)
}

// AggregateError collects every defect found in one pass.
type AggregateError struct {
	Issues []*Issue
}

func (e *AggregateError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].Error()
	}
	msg := fmt.Sprintf("%d validation issues:\n", len(e.Issues))
	for i, issue := range e.Issues {
		msg += fmt.Sprintf("  %d. %s\n", i+1, issue.Error())
	}
	return msg
}

// Issues returns all validation issues if err is an AggregateError,
// otherwise nil.
func Issues(err error) []*Issue {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Issues
	}
	return nil
}

// Validate checks that every variable's CPT fully covers the Cartesian
// product of its parents' domains and that every supplied row covers the
// variable's full outcome domain. A valid network is guaranteed to build a
// complete joint distribution.
func Validate(net *domain.Network) error {
	var issues []*Issue

	for _, v := range net.Variables() {
		parentDomains := make([][]domain.Outcome, 0, len(v.Parents()))
		for _, name := range v.ParentNames() {
			parent, err := net.Lookup(name)
			if err != nil {
				// Unreachable for a constructed network; report rather than panic.
				issues = append(issues, &Issue{Variable: v.Name(), Reason: err.Error()})
				continue
			}
			parentDomains = append(parentDomains, parent.Domain())
		}

		domainSize := len(v.Domain())
		for _, row := range productRows(parentDomains) {
			dist, err := v.Conditional(row)
			if err != nil {
				issues = append(issues, &Issue{
					Variable: v.Name(),
					Row:      row,
					Reason:   "no CPT row for this parent combination",
				})
				continue
			}
			if len(dist) < domainSize {
				issues = append(issues, &Issue{
					Variable: v.Name(),
					Row:      row,
					Reason: fmt.Sprintf("distribution covers %d of %d domain outcomes",
						len(dist), domainSize),
				})
			}
		}

		// Rows keyed by values outside the parents' domains are unreachable.
		for _, row := range v.Table().Rows() {
			for i, value := range row {
				if i >= len(parentDomains) || !containsOutcome(parentDomains[i], value) {
					issues = append(issues, &Issue{
						Variable: v.Name(),
						Row:      row,
						Reason:   fmt.Sprintf("value %s is outside the parent's domain", value),
					})
					break
				}
			}
		}
	}

	if len(issues) > 0 {
		return &AggregateError{Issues: issues}
	}
	return nil
}

// productRows enumerates the Cartesian product of the given domains. A nil
// input yields the single empty row (the unconditioned case).
func productRows(domains [][]domain.Outcome) []domain.Row {
	rows := []domain.Row{{}}
	for _, d := range domains {
		next := make([]domain.Row, 0, len(rows)*len(d))
		for _, row := range rows {
			for _, outcome := range d {
				extended := make(domain.Row, len(row), len(row)+1)
				copy(extended, row)
				next = append(next, append(extended, outcome))
			}
		}
		rows = next
	}
	return rows
}

func containsOutcome(domainOutcomes []domain.Outcome, o domain.Outcome) bool {
	for _, candidate := range domainOutcomes {
		if candidate == o {
			return true
		}
	}
	return false
}
