package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/dfs"
)

// TestHasCycle_TwoNodeLoop verifies the documented scenario a→b, b→a.
func TestHasCycle_TwoNodeLoop(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	assert.True(t, dfs.HasCycle(g))
}

// TestHasCycle_SelfLoop verifies a self-loop counts as a cycle.
func TestHasCycle_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "a")

	assert.True(t, dfs.HasCycle(g))
}

// TestHasCycle_DAG verifies a diamond DAG is cycle-free: converging paths
// alone (shared descendant d) must not be mistaken for a back edge.
func TestHasCycle_DAG(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "d")
	g.AddEdge("c", "d")

	assert.False(t, dfs.HasCycle(g))
}

// TestHasCycle_DisconnectedCycle verifies the full-graph sweep finds a cycle
// in a component far from the first sources.
func TestHasCycle_DisconnectedCycle(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("x", "y")
	g.AddEdge("y", "z")
	g.AddEdge("z", "x")

	assert.True(t, dfs.HasCycle(g))
}

// TestHasCycle_Empty verifies an empty graph has no cycle.
func TestHasCycle_Empty(t *testing.T) {
	assert.False(t, dfs.HasCycle(core.NewGraph[string]()))
}
