/*
Package ports defines the driven ports (interfaces) for the Bayeux engine.

These interfaces decouple the inference core from external implementations,
allowing the engine to work with various network sources and cache backends.

# Key Interfaces

  - Asker: The inference entry point consumed by driving adapters (CLI, HTTP, MCP).
  - NetworkLoader: Responsible for loading a network definition (e.g., from YAML or Memory).
  - PosteriorCache: Responsible for memoizing computed posteriors across calls or processes.
*/
package ports
