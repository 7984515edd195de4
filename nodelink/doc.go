// Package nodelink is the bidirectional codec between core.Graph and its
// flat node/link-list interchange representation.
//
// The representation is the library's sole persisted format. Its shape and
// field names are fixed (JSON tags: "nodes", "links", "id", "source",
// "target", "weight"):
//
//	{
//	  "nodes": [ {"id": "a"}, {"id": "b"} ],
//	  "links": [ {"source": "a", "target": "b", "weight": 1} ]
//	}
//
// Serialize emits the deduplicated node set in its first-discovery order and
// one link per outgoing adjacency occurrence — parallel edges produce
// repeated links — carrying the effective weight (explicit or default 1).
//
// Deserialize first registers every listed node, preserving isolated nodes
// with no edges, then adds every listed link; a link without a weight adds
// an unweighted edge.
//
// Round-trip law: Deserialize(Serialize(g)) reconstructs a graph with an
// identical node set and an identical multiset of (source, target, weight)
// edges.
package nodelink
