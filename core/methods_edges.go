// File: methods_edges.go
// Role: Edge lifecycle, existence and weight queries: AddEdge/AddWeightedEdge/
//       RemoveEdge/HasEdge, Weight/SetWeight.
// Determinism:
//   - Adjacency lists append in call order; RemoveEdge preserves the relative
//     order of surviving entries.

package core

// AddEdge appends a directed edge from → to. Both endpoints are implicitly
// registered in the node set if absent. Parallel edges are permitted: calling
// AddEdge twice with the same pair records two occurrences. AddEdge never
// fails.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], to)
}

// AddWeightedEdge appends a directed edge from → to and sets the weight of
// the (from, to) pair to weight. Like AddEdge, it never fails.
//
// Note that the weight table is keyed by the pair, not by the occurrence:
// parallel edges between the same endpoints share one weight entry.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddWeightedEdge(from, to N, weight float64) {
	g.AddEdge(from, to)
	g.SetWeight(from, to, weight)
}

// RemoveEdge deletes every occurrence of the edge from → to by filtering the
// source's adjacency list. Removing an absent edge is a no-op; RemoveEdge
// never fails. The pair's weight entry, if any, is left in place.
//
// Complexity: O(outdeg(from)).
func (g *Graph[N]) RemoveEdge(from, to N) {
	targets, ok := g.adj[from]
	if !ok {
		return
	}
	kept := targets[:0]
	for _, t := range targets {
		if t != to {
			kept = append(kept, t)
		}
	}
	g.adj[from] = kept
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(outdeg(from)).
func (g *Graph[N]) HasEdge(from, to N) bool {
	for _, t := range g.adj[from] {
		if t == to {
			return true
		}
	}

	return false
}

// Weight returns the weight recorded for the (from, to) pair, or
// DefaultWeight when no explicit entry exists. Weight never fails and does
// not require the pair to be adjacent.
//
// Complexity: O(1).
func (g *Graph[N]) Weight(from, to N) float64 {
	if w, ok := g.weights[edgeKey[N]{from: from, to: to}]; ok {
		return w
	}

	return DefaultWeight
}

// SetWeight records weight for the (from, to) pair. The pair does not need a
// corresponding adjacency entry; no validation or reconciliation is
// performed. SetWeight never fails.
//
// Complexity: O(1).
func (g *Graph[N]) SetWeight(from, to N, weight float64) {
	g.weights[edgeKey[N]{from: from, to: to}] = weight
}
