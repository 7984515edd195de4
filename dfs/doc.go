// Package dfs implements depth-first traversal over core.Graph: post-order
// search from a chosen source set, cycle detection, and topological sort.
//
// Key features:
//
//   - Traverse(g, sources, opts...): post-order DFS from the given sources
//     (nil/empty sources = every node in first-discovery order)
//   - WithoutSourceNodes(): pre-marks the sources as visited, yielding only
//     nodes reachable from, but distinct from, the source set
//   - WithCycleDetection(): a back edge (re-encountering a node still on the
//     active path) aborts the whole traversal with ErrCycleDetected
//   - TopologicalSort(g, sources, opts...): reversed post-order with cycle
//     detection forced on; for every traversed edge u→v, u precedes v
//   - HasCycle(g): full cycle-checking traversal folded to a boolean
//
// The walker is iterative — an explicit frame stack carries the
// visiting/visited marking — so deep or large graphs cannot exhaust the call
// stack. Adjacency is followed in insertion order, making results
// deterministic for a fixed construction sequence.
//
// Complexity:
//
//   - Time:   O(V + E) per traversal
//   - Memory: O(V) for the frame stack and state map
//
// Errors:
//
//   - ErrCycleDetected  if cycle detection is enabled and a back edge is found.
//
// Traversals mutate only call-local state; the graph itself is never touched,
// so an aborted traversal leaves it intact.
package dfs
