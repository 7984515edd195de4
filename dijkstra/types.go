// Package dijkstra defines the result type and sentinel errors for the
// shortest-path query.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrSourceNotFound indicates the requested source node is not a member
	// of the graph's node set ("never seen", as opposed to "unreached").
	ErrSourceNotFound = errors.New("dijkstra: source node not in graph")

	// ErrTargetNotFound indicates the requested target node is not a member
	// of the graph's node set.
	ErrTargetNotFound = errors.New("dijkstra: target node not in graph")

	// ErrNoPath indicates that both endpoints exist but no directed path
	// leads from source to target.
	ErrNoPath = errors.New("dijkstra: no path found")
)

// Result is a shortest path from source to target.
type Result[N comparable] struct {
	// Path is the ordered node sequence from source to target inclusive.
	Path []N

	// Weight is the total accumulated weight along Path: the sum of the
	// effective weight (explicit or default 1) of each traversed edge.
	Weight float64
}
