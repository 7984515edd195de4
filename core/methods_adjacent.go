// File: methods_adjacent.go
// Role: Adjacency and degree queries: Adjacent/OutboundNodes/InboundNodes,
//       EntryNodes/ExitNodes, Indegree/Outdegree.
// Determinism:
//   - Adjacent preserves insertion order and duplicates.
//   - Inbound/entry/exit scans iterate the node registry in first-discovery
//     order, so results are stable for a fixed construction sequence.

package core

// Adjacent returns the outgoing adjacency list of id in insertion order,
// duplicates included. Unknown ids yield an empty list, never an error.
// The returned slice is a copy.
//
// Complexity: O(outdeg(id)).
func (g *Graph[N]) Adjacent(id N) []N {
	targets := g.adj[id]
	out := make([]N, len(targets))
	copy(out, targets)

	return out
}

// OutboundNodes returns the unique successors of id in first-occurrence
// order. Unknown ids yield an empty list.
//
// Complexity: O(outdeg(id)).
func (g *Graph[N]) OutboundNodes(id N) []N {
	targets := g.adj[id]
	seen := make(map[N]struct{}, len(targets))
	out := make([]N, 0, len(targets))
	for _, t := range targets {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// InboundNodes returns the unique predecessors of id: every node whose
// adjacency list references id at least once. Sources are listed in
// first-discovery order. Unknown ids yield an empty list.
//
// Complexity: O(V + E) — a full adjacency scan.
func (g *Graph[N]) InboundNodes(id N) []N {
	out := make([]N, 0)
	for _, from := range g.order {
		for _, to := range g.adj[from] {
			if to == id {
				out = append(out, from)
				break
			}
		}
	}

	return out
}

// EntryNodes returns every node with zero inbound edges, in first-discovery
// order. A node referenced only by itself (a pure self-loop) is not an entry
// node.
//
// Complexity: O(V + E).
func (g *Graph[N]) EntryNodes() []N {
	// One pass to collect every referenced target, then filter the registry.
	referenced := make(map[N]struct{}, len(g.nodes))
	for _, targets := range g.adj {
		for _, to := range targets {
			referenced[to] = struct{}{}
		}
	}

	out := make([]N, 0)
	for _, n := range g.order {
		if _, ok := referenced[n]; !ok {
			out = append(out, n)
		}
	}

	return out
}

// ExitNodes returns every node with zero outbound edges, in first-discovery
// order.
//
// Complexity: O(V).
func (g *Graph[N]) ExitNodes() []N {
	out := make([]N, 0)
	for _, n := range g.order {
		if len(g.adj[n]) == 0 {
			out = append(out, n)
		}
	}

	return out
}

// Indegree returns the number of inbound edge occurrences of id, counting
// parallel duplicates separately.
//
// Complexity: O(V + E).
func (g *Graph[N]) Indegree(id N) int {
	var deg int
	for _, targets := range g.adj {
		for _, to := range targets {
			if to == id {
				deg++
			}
		}
	}

	return deg
}

// Outdegree returns the number of outbound edge occurrences of id, counting
// parallel duplicates separately.
//
// Complexity: O(1).
func (g *Graph[N]) Outdegree(id N) int {
	return len(g.adj[id])
}
