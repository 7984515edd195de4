package dfs_test

import (
	"testing"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/dfs"
)

// BenchmarkTraverse_Chain100000 measures a full traversal of a linear chain
// of 100,000 edges; the explicit stack keeps memory flat regardless of
// depth.
func BenchmarkTraverse_Chain100000(b *testing.B) {
	g := core.NewGraph[int]()
	for i := 0; i < 100_000; i++ {
		g.AddEdge(i, i+1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Traverse(g, []int{0})
	}
}

// BenchmarkTopologicalSort_Chain100000 measures ordering the same chain with
// cycle detection on.
func BenchmarkTopologicalSort_Chain100000(b *testing.B) {
	g := core.NewGraph[int]()
	for i := 0; i < 100_000; i++ {
		g.AddEdge(i, i+1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g, nil)
	}
}
