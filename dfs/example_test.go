package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/dfs"
)

// ExampleTraverse demonstrates a post-order depth-first traversal of a
// diamond-shaped graph. Graph structure:
//
//	  a
//	 / \
//	b   c
//	 \ /
//	  d
func ExampleTraverse() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")

	order, _ := dfs.Traverse(g, []string{"a"})
	fmt.Println(order)

	// Output:
	// [d b c a]
}

// ExampleTopologicalSort orders a small build-dependency graph so that every
// prerequisite precedes its dependents.
func ExampleTopologicalSort() {
	g := core.NewGraph[string]()
	g.AddEdge("libc", "compiler")
	g.AddEdge("compiler", "app")
	g.AddEdge("libc", "app")

	order, err := dfs.TopologicalSort(g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [libc compiler app]
}

// ExampleHasCycle shows cycle detection folding to a boolean.
func ExampleHasCycle() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	fmt.Println(dfs.HasCycle(g))

	// Output:
	// true
}
