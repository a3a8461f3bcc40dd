/*
Package bayeux is an exact inference engine for discrete Bayesian networks.

It computes posterior distributions by full joint enumeration: the joint
distribution over every combination of variable outcomes is built once from
the network's conditional tables, then queries marginalize it against the
supplied evidence. This is exponential in the number of variables, which makes
it exact, reproducible and well suited to small expert-system networks.

# Concept

A network is a directed acyclic graph of named variables. Root variables carry
a prior distribution; conditioned variables carry one distribution per
combination of parent outcomes. Outcomes are booleans or strings. The engine
is pure: inference never mutates the network, so a single engine is safe for
concurrent queries.

# Key Features

  - Exact inference: enumeration gives the true posterior, not an estimate.
  - Hexagonal architecture: the core is decoupled from loaders, caches and transports.
  - Posterior caching: plug in an in-memory or Redis-backed cache.
  - Multiple surfaces: Go API, CLI, HTTP and MCP server share one engine.

# Usage

Initialize the engine with a YAML network file, or inject a network built with
the pkg/dsl builder.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/bayeux"
		"github.com/aretw0/bayeux/pkg/domain"
	)

	func main() {
		eng, err := bayeux.New("./sprinkler.yaml")
		if err != nil {
			log.Fatal(err)
		}

		posterior, err := eng.Ask(context.Background(), "rain", domain.Evidence{
			"grass_wet": domain.True,
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("P(rain | grass_wet) = %.4f\n", posterior[domain.True])
	}

See pkg/dsl for the programmatic network builder and pkg/adapters/yamlfile for
the file format.
*/
package bayeux
