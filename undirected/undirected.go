package undirected

import "github.com/katalvlaran/grafo/core"

// Graph is an undirected multigraph: a core.Graph in which every edge
// insertion is symmetrized. The full core query and mutation surface is
// available through embedding.
type Graph[N comparable] struct {
	*core.Graph[N]
}

// New creates an empty undirected graph over node type N.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{Graph: core.NewGraph[N]()}
}

// AddEdge inserts the edge u–v in both directions. A self-loop (u == u) is
// inserted once, not duplicated. AddEdge never fails.
func (g *Graph[N]) AddEdge(u, v N) {
	g.Graph.AddEdge(u, v)
	if u != v {
		g.Graph.AddEdge(v, u)
	}
}

// AddWeightedEdge inserts the edge u–v in both directions and records the
// weight for both orientations, so Weight(u, v) == Weight(v, u).
func (g *Graph[N]) AddWeightedEdge(u, v N, weight float64) {
	g.AddEdge(u, v)
	g.SetWeight(u, v, weight)
	g.SetWeight(v, u, weight)
}
