package dfs

import "github.com/katalvlaran/grafo/core"

// TopologicalSort computes a linear ordering of the subgraph reachable from
// sources (nil or empty = all nodes) such that for every traversed edge u→v,
// u appears before v. It is the reversed post-order of a cycle-checking
// traversal: cycle detection is always on, and a cyclic reachable subgraph
// fails with ErrCycleDetected.
//
// WithoutSourceNodes is honored and excludes the sources themselves from the
// ordering.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[N comparable](g *core.Graph[N], sources []N, opts ...Option) ([]N, error) {
	// Force cycle detection on top of whatever the caller configured.
	merged := make([]Option, 0, len(opts)+1)
	merged = append(merged, opts...)
	merged = append(merged, WithCycleDetection())

	order, err := Traverse(g, sources, merged...)
	if err != nil {
		return nil, err
	}

	// Reverse the post-order in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
