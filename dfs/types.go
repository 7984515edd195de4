// Package dfs defines the options and sentinel errors for depth-first
// traversal, cycle detection, and topological sort.
package dfs

import "errors"

// Visitation states of the iterative walker.
const (
	white = iota // white: the node has not been visited yet.
	gray         // gray: the node is on the active path (visiting).
	black        // black: the node and all its descendants are fully processed.
)

// ErrCycleDetected indicates that cycle detection was enabled and the walker
// re-encountered a node still on the active path (a back edge). It aborts
// the entire traversal and propagates out of TopologicalSort.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Option configures optional behavior of a traversal.
// Use with Traverse(g, sources, opts...) or TopologicalSort(g, sources, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a traversal.
type Options struct {
	// IncludeSources controls whether the source nodes themselves appear in
	// the output. When false, sources are pre-marked visited before the walk
	// descends into their neighbors, so the result contains only nodes
	// reachable from, but distinct from, the source set. Default is true.
	IncludeSources bool

	// DetectCycles enables back-edge detection: re-encountering a node still
	// on the active path aborts the traversal with ErrCycleDetected.
	// Default is false.
	DetectCycles bool
}

// DefaultOptions returns the Options used when no Option is supplied:
// sources included in the output, no cycle detection.
func DefaultOptions() Options {
	return Options{
		IncludeSources: true,
		DetectCycles:   false,
	}
}

// WithoutSourceNodes returns an Option that excludes the source nodes from
// the traversal output. The sources are marked visited up front and the walk
// starts from their neighbors.
func WithoutSourceNodes() Option {
	return func(o *Options) {
		o.IncludeSources = false
	}
}

// WithCycleDetection returns an Option that makes the traversal abort with
// ErrCycleDetected on the first back edge.
func WithCycleDetection() Option {
	return func(o *Options) {
		o.DetectCycles = true
	}
}
