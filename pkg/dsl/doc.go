/*
Package dsl provides a Go DSL for programmatically constructing Bayesian
networks.

It allows developers to define networks using a type-safe, fluent builder
pattern instead of relying on external YAML files. This is particularly useful
for dynamic network generation, unit testing, and leveraging IDE
autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/bayeux/pkg/dsl"
	)

	func main() {
		net, err := dsl.New().
			Add("rain", nil, dsl.Prior(dsl.Binary(0.2))).
			Add("wet", []string{"rain"}, dsl.CPT{
				{Given: dsl.Given(true), Dist: dsl.Binary(0.9)},
				{Given: dsl.Given(false), Dist: dsl.Binary(0.1)},
			}).
			Build()
		// ... pass net to bayeux.New(...) via bayeux.WithNetwork
		_ = net
		_ = err
	}

The CPT grammar mirrors the authoring shorthands: a root variable takes a
single unconditioned row (Prior), a conditioned variable lists one row per
parent-value combination. Row values and outcome keys are booleans or strings;
a scalar probability p via Binary(p) denotes {true: p, false: 1-p}.
*/
package dsl
