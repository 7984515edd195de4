package nodelink_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/nodelink"
)

// TestSerialize_DefaultWeights pins the documented scenario: a→b, b→c with
// no explicit weights yields nodes [a,b,c] and links carrying the effective
// default weight 1.
func TestSerialize_DefaultWeights(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	p := nodelink.Serialize(g)

	require.Len(t, p.Nodes, 3)
	assert.Equal(t, []nodelink.Node[string]{{ID: "a"}, {ID: "b"}, {ID: "c"}}, p.Nodes)
	require.Len(t, p.Links, 2)
	assert.Equal(t, "a", p.Links[0].Source)
	assert.Equal(t, "b", p.Links[0].Target)
	require.NotNil(t, p.Links[0].Weight)
	assert.Equal(t, 1.0, *p.Links[0].Weight)
	assert.Equal(t, "b", p.Links[1].Source)
	assert.Equal(t, "c", p.Links[1].Target)
	require.NotNil(t, p.Links[1].Weight)
	assert.Equal(t, 1.0, *p.Links[1].Weight)
}

// TestSerialize_IsolatedNodesAndDuplicates verifies isolated nodes appear in
// the node list and parallel edges produce repeated links.
func TestSerialize_IsolatedNodesAndDuplicates(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddNode("lone")

	p := nodelink.Serialize(g)

	assert.Equal(t, []nodelink.Node[string]{{ID: "a"}, {ID: "b"}, {ID: "lone"}}, p.Nodes)
	require.Len(t, p.Links, 2)
	for _, l := range p.Links {
		assert.Equal(t, "a", l.Source)
		assert.Equal(t, "b", l.Target)
	}
}

// TestRoundTrip verifies the round-trip law: deserializing a serialization
// reconstructs the node set, the adjacency multiset and the weights.
func TestRoundTrip(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddWeightedEdge("a", "b", 4)
	g.AddEdge("b", "c")
	g.AddEdge("b", "c")
	g.AddNode("lone")

	out := nodelink.Deserialize(nodelink.Serialize(g))

	assert.Equal(t, g.Nodes(), out.Nodes())
	for _, n := range g.Nodes() {
		assert.Equal(t, g.Adjacent(n), out.Adjacent(n), "adjacency of %q", n)
		for _, m := range g.Adjacent(n) {
			assert.Equal(t, g.Weight(n, m), out.Weight(n, m), "weight %q→%q", n, m)
		}
	}
}

// TestDeserialize_OptionalWeight verifies a link without a weight adds an
// unweighted edge (effective weight 1) while explicit weights stick.
func TestDeserialize_OptionalWeight(t *testing.T) {
	w := 3.5
	p := &nodelink.Payload[string]{
		Nodes: []nodelink.Node[string]{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Links: []nodelink.Link[string]{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c", Weight: &w},
		},
	}

	g := nodelink.Deserialize(p)

	assert.Equal(t, []string{"a", "b", "c"}, g.Nodes())
	assert.Equal(t, 1.0, g.Weight("a", "b"))
	assert.Equal(t, 3.5, g.Weight("b", "c"))
}

// TestDeserialize_Nil verifies a nil payload yields an empty graph.
func TestDeserialize_Nil(t *testing.T) {
	g := nodelink.Deserialize[string](nil)

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

// TestPayload_JSONShape pins the interchange format bit-for-bit: field names
// and nesting are part of the public contract.
func TestPayload_JSONShape(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddWeightedEdge("a", "b", 2)

	raw, err := json.Marshal(nodelink.Serialize(g))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"nodes":[{"id":"a"},{"id":"b"}],"links":[{"source":"a","target":"b","weight":2}]}`,
		string(raw),
	)
}

// TestPayload_JSONRoundTrip verifies a payload survives encoding and
// decoding, optional weight included.
func TestPayload_JSONRoundTrip(t *testing.T) {
	raw := `{"nodes":[{"id":"a"},{"id":"b"}],"links":[{"source":"a","target":"b"}]}`

	var p nodelink.Payload[string]
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	g := nodelink.Deserialize(&p)
	assert.True(t, g.HasEdge("a", "b"))
	assert.Nil(t, p.Links[0].Weight)
	assert.Equal(t, 1.0, g.Weight("a", "b"))
}
