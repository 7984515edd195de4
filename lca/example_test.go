package lca_test

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/lca"
)

// ExampleLowestCommonAncestors finds where two branches of a diamond
// converge. Remember: "ancestor" here means forward-reachable.
func ExampleLowestCommonAncestors() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")

	fmt.Println(lca.LowestCommonAncestors(g, "b", "c"))

	// Output:
	// [d]
}
