package dfs

import (
	"errors"

	"github.com/katalvlaran/grafo/core"
)

// HasCycle reports whether g contains a directed cycle. It runs a full
// cycle-checking traversal over all nodes and folds ErrCycleDetected into
// true; a clean traversal yields false.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle[N comparable](g *core.Graph[N]) bool {
	_, err := Traverse(g, nil, WithCycleDetection())

	return errors.Is(err, ErrCycleDetected)
}
