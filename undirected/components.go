package undirected

import (
	"github.com/katalvlaran/grafo/dfs"
)

// Components partitions the node set into maximal connected groups. Nodes
// are scanned in first-discovery order; each not-yet-assigned node seeds a
// depth-first traversal that collects its whole component (symmetric edges
// make directed reachability equal undirected connectivity). Each group is
// listed seed-first, and the groups form a disjoint cover of the node set.
//
// Complexity: O(V + E) time, O(V) memory.
func Components[N comparable](g *Graph[N]) [][]N {
	assigned := make(map[N]struct{}, g.NodeCount())
	comps := make([][]N, 0)

	for _, n := range g.Nodes() {
		if _, ok := assigned[n]; ok {
			continue
		}

		// Traversal error is impossible without cycle detection.
		members, _ := dfs.Traverse(g.Graph, []N{n})

		// Reversed post-order puts the seed first.
		for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
			members[i], members[j] = members[j], members[i]
		}
		for _, m := range members {
			assigned[m] = struct{}{}
		}
		comps = append(comps, members)
	}

	return comps
}
