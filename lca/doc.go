// Package lca computes lowest common ancestors over core.Graph under
// forward-reachability semantics.
//
// In this package "ancestor of n" means "forward-reachable from n along
// outgoing edges" — the successor direction, not conventional
// graph-theoretic ancestry. The direction is part of the public contract and
// is preserved deliberately; consumers relying on predecessor-based LCA
// should invert their edges first.
//
// LowestCommonAncestors runs two iterative depth-first phases:
//
//  1. Walk forward from node1, recording every visited node in visitation
//     order as node1's ancestor set. Reaching node2 itself short-circuits
//     the whole query to [node2].
//  2. Walk forward from node2; any newly visited node already present in
//     node1's ancestor set joins the result, and that branch stops
//     expanding. Once any result exists, no further branch expands
//     (first-found-per-branch policy): the result is the set of first
//     intersecting nodes per traversal branch, not necessarily the globally
//     minimal common ancestor set.
//
// The query never fails: unknown nodes simply have no successors and the
// result may be empty.
//
// Complexity:
//
//   - Time:   O(V + E) per phase
//   - Memory: O(V) for visited sets and the walk stack
package lca
