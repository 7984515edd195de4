// Package core defines the generic Graph type and its constructor.
//
// This file declares the Graph struct, the composite edge-weight key, and
// NewGraph. All behavior lives in the methods_* files.
package core

// DefaultWeight is the effective weight of any edge whose (from, to) pair has
// no explicit entry in the weight table. Querying the weight of an unset pair
// never fails; it reports this value.
const DefaultWeight float64 = 1

// edgeKey identifies a directed (from, to) pair in the weight table.
// A struct key gives structural equality and hashing for any comparable N,
// with no separator-collision risk.
type edgeKey[N comparable] struct {
	from N
	to   N
}

// Graph is a directed, optionally weighted, in-memory multigraph over node
// identifiers of any comparable type N.
//
// order preserves the sequence in which node ids were first discovered
// (explicitly via AddNode or implicitly via AddEdge); nodes mirrors it as a
// membership set. adj maps each node to its outgoing adjacency list in
// insertion order, duplicates included. weights holds explicit edge weights;
// absent pairs default to DefaultWeight.
//
// Graph has no internal locking; see the package documentation for the
// single-threaded contract.
type Graph[N comparable] struct {
	order   []N                    // node ids in first-discovery order
	nodes   map[N]struct{}         // membership set, mirrors order
	adj     map[N][]N              // outgoing adjacency, insertion order, duplicates kept
	weights map[edgeKey[N]]float64 // explicit weights; unset pairs read as DefaultWeight
}

// NewGraph creates an empty directed graph over node type N.
// Complexity: O(1).
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		nodes:   make(map[N]struct{}),
		adj:     make(map[N][]N),
		weights: make(map[edgeKey[N]]float64),
	}
}
