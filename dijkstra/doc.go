// Package dijkstra implements single-source, single-target shortest paths
// over core.Graph with non-negative edge weights.
//
// ShortestPath processes nodes in order of increasing tentative distance
// using a min-heap priority queue with the lazy decrease-key strategy
// (duplicates are pushed and stale entries skipped on pop). Relaxation reads
// each edge's weight from the graph's weight table, defaulting to 1 when
// unset. After the queue drains, the path is reconstructed by walking the
// predecessor map from target back to source.
//
// Weights are assumed non-negative; this is a caller responsibility and is
// not validated. Tie-breaking among equal-distance candidates is
// unspecified.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) for the distance/predecessor maps and the heap
//
// Errors (sentinel, matched with errors.Is):
//
//   - ErrSourceNotFound  – the source node is not a member of the node set.
//   - ErrTargetNotFound  – the target node is not a member of the node set.
//   - ErrNoPath          – the predecessor walk from target does not reach
//     the source: the target is in the graph but unreachable.
//
// The algorithm mutates only call-local state; a failed query leaves the
// graph untouched.
package dijkstra
