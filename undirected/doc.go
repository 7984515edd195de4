// Package undirected wraps core.Graph with symmetric edge insertion and adds
// connected-component discovery.
//
// Every AddEdge(u, v) also inserts (v, u), except a self-loop (u, u), which
// is inserted once. All other core.Graph operations (removal, queries,
// weights) are inherited unchanged through embedding; note that RemoveEdge
// removes one direction only — drop both explicitly if needed.
//
// Components partitions the node set into maximal connected groups by
// repeated depth-first traversal: because every edge is mirrored, directed
// reachability coincides with undirected connectivity. Groups appear in
// first-discovery order of their seed node; an isolated node forms its own
// singleton component.
//
// Complexity: Components is O(V + E) time, O(V) memory.
package undirected
