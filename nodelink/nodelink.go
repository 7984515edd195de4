package nodelink

import "github.com/katalvlaran/grafo/core"

// Node is one record of the serialized node list: a single node identifier.
type Node[N comparable] struct {
	ID N `json:"id"`
}

// Link is one record of the serialized link list: a directed edge occurrence
// with an optional weight. A nil Weight means "unspecified" and deserializes
// as an unweighted edge (effective weight 1).
type Link[N comparable] struct {
	Source N        `json:"source"`
	Target N        `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}

// Payload is the complete flat representation of a graph: the node list plus
// the link list. It is both the construction input and the serialization
// output.
type Payload[N comparable] struct {
	Nodes []Node[N] `json:"nodes"`
	Links []Link[N] `json:"links"`
}

// Serialize flattens g into a Payload: nodes in first-discovery order, then
// for every node one link per outgoing adjacency occurrence (duplicates
// repeated) with its effective weight always populated.
//
// Complexity: O(V + E).
func Serialize[N comparable](g *core.Graph[N]) *Payload[N] {
	ids := g.Nodes()
	p := &Payload[N]{
		Nodes: make([]Node[N], 0, len(ids)),
		Links: make([]Link[N], 0),
	}

	for _, id := range ids {
		p.Nodes = append(p.Nodes, Node[N]{ID: id})
	}
	for _, from := range ids {
		for _, to := range g.Adjacent(from) {
			w := g.Weight(from, to)
			p.Links = append(p.Links, Link[N]{Source: from, Target: to, Weight: &w})
		}
	}

	return p
}

// Deserialize builds a fresh graph from p: every listed node is registered
// first (so isolated nodes survive), then every link is added, weighted when
// the record carries a weight. A nil payload yields an empty graph.
//
// Complexity: O(V + E).
func Deserialize[N comparable](p *Payload[N]) *core.Graph[N] {
	g := core.NewGraph[N]()
	if p == nil {
		return g
	}

	for _, n := range p.Nodes {
		g.AddNode(n.ID)
	}
	for _, l := range p.Links {
		if l.Weight != nil {
			g.AddWeightedEdge(l.Source, l.Target, *l.Weight)
		} else {
			g.AddEdge(l.Source, l.Target)
		}
	}

	return g
}
