// File: methods.go
// Role: Node lifecycle and node-set queries: AddNode/RemoveNode/HasNode,
//       Nodes/NodeCount/EdgeCount.
// Determinism:
//   - Nodes() returns ids in first-discovery order (explicit or implicit).
//   - RemoveNode compacts the discovery order without reshuffling survivors.

package core

// AddNode registers id as a member of the node set.
// Adding an id that is already present is a no-op; AddNode never fails.
//
// Steps:
//  1. Membership check against the node set.
//  2. Append to the discovery-order slice and the membership set.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(id N) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
}

// RemoveNode deletes id from the graph and cascades: it drops id's own
// adjacency list and purges every occurrence of id from every other node's
// adjacency list. Removing an absent id is a no-op; RemoveNode never fails.
//
// Weight entries referencing id are intentionally left in place; they are
// unreachable through adjacency and harmless (see package doc).
//
// Steps:
//  1. Membership check; bail out early for unknown ids.
//  2. Delete from the membership set and compact the discovery order.
//  3. Drop id's outgoing adjacency list.
//  4. Filter id out of every remaining adjacency list, preserving order.
//
// Complexity: O(V + E).
func (g *Graph[N]) RemoveNode(id N) {
	// 1) Unknown ids cannot be referenced anywhere by invariant.
	if _, ok := g.nodes[id]; !ok {
		return
	}

	// 2) Remove from registry.
	delete(g.nodes, id)
	kept := g.order[:0]
	for _, n := range g.order {
		if n != id {
			kept = append(kept, n)
		}
	}
	g.order = kept

	// 3) Drop the node's own list.
	delete(g.adj, id)

	// 4) Purge inbound references, keeping each list's relative order.
	for from, targets := range g.adj {
		filtered := targets[:0]
		for _, to := range targets {
			if to != id {
				filtered = append(filtered, to)
			}
		}
		g.adj[from] = filtered
	}
}

// HasNode reports whether id is a member of the node set.
// Complexity: O(1).
func (g *Graph[N]) HasNode(id N) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns the deduplicated node set in first-discovery order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph[N]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edge occurrences, counting parallel
// duplicates separately (multigraph semantics).
// Complexity: O(V).
func (g *Graph[N]) EdgeCount() int {
	var total int
	for _, targets := range g.adj {
		total += len(targets)
	}

	return total
}
