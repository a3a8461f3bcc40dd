/*
Package domain contains the core domain models for the Bayeux inference engine.

It defines the fundamental entities of a discrete Bayesian network: Outcomes,
probability Distributions, Conditional Probability Tables, Variables and the
Network itself. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Outcome: A tagged value (bool or string) a variable can take.
  - Distribution: A normalized probability table over a variable's outcomes.
  - ConditionalTable: Maps parent-value rows to Distributions (a CPT).
  - Variable: A named node of the network with its parents and CPT.
  - Network: Variables in parent-before-child order with name lookup.
  - Evidence: Observed variable-value assignments conditioning a query.
*/
package domain
