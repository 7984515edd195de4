// File: methods_clone.go
// Role: Deep copy of the whole graph.

package core

// Clone returns a deep copy of g: node registry, adjacency lists and weight
// table are all duplicated, so subsequent mutation of either graph never
// affects the other.
//
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	out := &Graph[N]{
		order:   make([]N, len(g.order)),
		nodes:   make(map[N]struct{}, len(g.nodes)),
		adj:     make(map[N][]N, len(g.adj)),
		weights: make(map[edgeKey[N]]float64, len(g.weights)),
	}
	copy(out.order, g.order)
	for n := range g.nodes {
		out.nodes[n] = struct{}{}
	}
	for from, targets := range g.adj {
		dup := make([]N, len(targets))
		copy(dup, targets)
		out.adj[from] = dup
	}
	for k, w := range g.weights {
		out.weights[k] = w
	}

	return out
}
