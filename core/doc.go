// Package core provides the central generic Graph type: a directed,
// optionally weighted, in-memory multigraph over any comparable node
// identifier type.
//
// The Graph G = (V,E) is deliberately minimal and total:
//
//   - Node identifiers are generic (N comparable) — strings, ints, or any
//     host-defined comparable type.
//   - Adjacency lists preserve insertion order and keep duplicate entries
//     (multigraph semantics); traversal order over neighbors is therefore
//     deterministic for a fixed construction sequence.
//   - Edge weights live in a side table keyed by the (from, to) pair with a
//     true composite key (structural equality, no string concatenation);
//     absent entries default to DefaultWeight (1).
//   - Every operation is total: adding an edge implicitly creates both
//     endpoints, removing an absent node or edge is a no-op, and lookups on
//     unknown nodes yield empty or default results — nothing here returns an
//     error.
//
// Invariants:
//
//   - The node set always equals the union of adjacency keys and adjacency
//     values: AddEdge(u,v) registers both endpoints, RemoveNode(n) drops n's
//     own list and purges every inbound reference to n.
//   - Weight entries are not cleaned up when an edge is removed; a stale
//     entry is harmless because Weight is only meaningful alongside
//     adjacency membership.
//   - Accessors (Nodes, Adjacent, …) return copies; callers can never alias
//     internal state.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id N)                    // O(1); duplicate adds are no-ops
//	RemoveNode(id N)                 // O(V+E): purge key and all references
//	HasNode(id N) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to N)              // O(1) amortized; creates endpoints
//	AddWeightedEdge(from, to N, w float64) // AddEdge + SetWeight
//	RemoveEdge(from, to N)           // O(outdeg(from)): drops every occurrence
//	HasEdge(from, to N) bool         // O(outdeg(from))
//
//	// Weights
//	Weight(from, to N) float64       // O(1); DefaultWeight when unset
//	SetWeight(from, to N, w float64) // O(1); pair need not be adjacent
//
//	// Query
//	Nodes() []N                      // deduplicated, first-discovery order
//	Adjacent(id N) []N               // insertion order, duplicates kept
//	OutboundNodes(id N) []N          // unique successors, first-occurrence order
//	InboundNodes(id N) []N           // unique predecessors; O(V+E) scan
//	EntryNodes() []N                 // zero inbound, first-discovery order
//	ExitNodes() []N                  // zero outbound, first-discovery order
//	Indegree(id N) int               // inbound occurrences (duplicates counted)
//	Outdegree(id N) int              // outbound occurrences (duplicates counted)
//	NodeCount() int                  // O(1)
//	EdgeCount() int                  // O(V): total adjacency occurrences
//
//	// Cloning
//	Clone() *Graph[N]                // O(V+E) deep copy
//
// Concurrency:
//
// Graph carries no internal synchronization. It is single-threaded by
// contract: a concurrent host must serialize access externally (one owner
// goroutine, or a lock around the whole graph). Read-only algorithm packages
// (dfs, dijkstra, lca) keep all auxiliary state call-local, so an aborted
// algorithm never perturbs the graph.
package core
