package lca

import "github.com/katalvlaran/grafo/core"

// LowestCommonAncestors returns the candidate common ancestors of node1 and
// node2 under forward reachability: nodes reachable from both endpoints
// along outgoing edges, discovered by the two-phase branch-limited walk
// described in the package documentation. The result is in phase-2 discovery
// order and may be empty; the query never fails.
//
// If node2 is itself reachable from node1 (including node1 == node2), the
// query short-circuits to [node2].
//
// Complexity: O(V + E) time, O(V) memory.
func LowestCommonAncestors[N comparable](g *core.Graph[N], node1, node2 N) []N {
	if g == nil {
		g = core.NewGraph[N]()
	}

	// Phase 1: collect everything forward-reachable from node1. Reaching
	// node2 makes it the unique lowest common ancestor.
	ancestors := make(map[N]struct{})
	visited := make(map[N]struct{})
	stack := []N{node1}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}
		ancestors[n] = struct{}{}
		if n == node2 {
			return []N{node2}
		}
		pushReversed(&stack, g.Adjacent(n))
	}

	// Phase 2: walk forward from node2. A node in node1's ancestor set joins
	// the result and ends its branch; once anything is found, no branch
	// expands further.
	result := make([]N, 0)
	visited = make(map[N]struct{})
	stack = append(stack[:0], node2)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}
		if _, ok := ancestors[n]; ok {
			result = append(result, n)

			continue
		}
		if len(result) > 0 {
			continue
		}
		pushReversed(&stack, g.Adjacent(n))
	}

	return result
}

// pushReversed pushes adj onto the stack back-to-front so that pops examine
// neighbors in adjacency insertion order (preorder equivalence with the
// recursive formulation).
func pushReversed[N comparable](stack *[]N, adj []N) {
	for i := len(adj) - 1; i >= 0; i-- {
		*stack = append(*stack, adj[i])
	}
}
