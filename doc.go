// Package grafo is a small, generic, in-memory graph modeling toolkit:
// directed (optionally weighted) multigraphs with traversal, ordering,
// shortest-path, common-ancestor and serialization operations, plus an
// undirected variant with connected-component discovery.
//
// What grafo gives you:
//
//   - Core primitives: build node sets and adjacency lists generically over
//     any comparable identifier type, with total (never-failing) mutation
//   - Traversals: iterative depth-first search with cycle detection
//   - Ordering: topological sort over the reachable subgraph
//   - Shortest paths: single-source/single-target Dijkstra
//   - Ancestry: lowest common ancestors under forward reachability
//   - Interchange: a flat node/link-list codec for persistence and transport
//   - Undirected graphs: symmetric edges and connected components
//
// Why choose grafo?
//
//   - Generic – node identifiers are any comparable type, not just strings
//   - Predictable – adjacency preserves insertion order; traversals are
//     deterministic for a fixed construction sequence
//   - Total core – mutation and lookup never fail; missing entries yield
//     empty or default results
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under focused subpackages:
//
//	core/       — generic Graph, adjacency, weights & total mutation surface
//	dfs/        — depth-first traversal, cycle detection, topological sort
//	dijkstra/   — single-pair shortest path on non-negative weights
//	lca/        — lowest common ancestors (forward-reachability semantics)
//	nodelink/   — node/link-list serialization codec (JSON-shaped)
//	undirected/ — symmetric-edge variant with component discovery
//
// Quick ASCII example:
//
//	    a──▶b
//	    │   │
//	    ▼   ▼
//	    c──▶d
//
//	a directed diamond: topological sort yields a first and d last.
//
// The structure is not safe for concurrent mutation; a multi-goroutine host
// must serialize access externally. See each subpackage's doc.go for the
// full contract.
package grafo
