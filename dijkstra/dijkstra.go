package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/grafo/core"
)

// ShortestPath computes the minimum-weight directed path from source to
// target in g, assuming non-negative edge weights (not validated). Missing
// weight entries default to 1.
//
// Returns ErrSourceNotFound or ErrTargetNotFound when an endpoint is not a
// member of the node set, and ErrNoPath when the target exists but the
// predecessor walk cannot reach the source. When source == target the path
// is the single node with weight 0.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func ShortestPath[N comparable](g *core.Graph[N], source, target N) (Result[N], error) {
	var zero Result[N]

	// 1. Endpoint preconditions: distinguish "never seen" from "unreached".
	if g == nil || !g.HasNode(source) {
		return zero, ErrSourceNotFound
	}
	if !g.HasNode(target) {
		return zero, ErrTargetNotFound
	}

	// 2. Label-setting run from source.
	r := newRunner(g)
	r.init(source)
	r.process()

	// 3. Walk predecessors from target back to source.
	return r.reconstruct(source, target)
}

// runner holds the mutable call-local state of a single query.
type runner[N comparable] struct {
	g       *core.Graph[N] // input graph, read-only
	dist    map[N]float64  // node → best-known distance from source
	prev    map[N]N        // node → predecessor on the best path (absent = none)
	visited map[N]bool     // node → distance finalized
	pq      nodePQ[N]      // lazy min-heap of (node, distance) entries
}

func newRunner[N comparable](g *core.Graph[N]) *runner[N] {
	n := g.NodeCount()

	return &runner[N]{
		g:       g,
		dist:    make(map[N]float64, n),
		prev:    make(map[N]N, n),
		visited: make(map[N]bool, n),
		pq:      make(nodePQ[N], 0, n),
	}
}

// init sets every known node to +Inf, the source to 0, and seeds the heap.
func (r *runner[N]) init(source N) {
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance node and relaxes its
// outgoing edges until the queue empties. Stale heap entries (already
// finalized nodes) are skipped — the lazy decrease-key pattern.
func (r *runner[N]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of every unique successor of u.
// Parallel edges between the same pair share one weight entry, so unique
// successors are sufficient.
func (r *runner[N]) relax(u N) {
	for _, v := range r.g.OutboundNodes(u) {
		next := r.dist[u] + r.g.Weight(u, v)
		if next >= r.dist[v] {
			continue
		}
		r.dist[v] = next
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[N]{id: v, dist: next})
	}
}

// reconstruct walks the predecessor map from target back to source and
// reverses the chain. A walk that cannot step back to the source means the
// target was never reached.
func (r *runner[N]) reconstruct(source, target N) (Result[N], error) {
	path := []N{target}
	for u := target; u != source; {
		p, ok := r.prev[u]
		if !ok {
			return Result[N]{}, ErrNoPath
		}
		path = append(path, p)
		u = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result[N]{Path: path, Weight: r.dist[target]}, nil
}

// nodeItem is one heap entry: a node and its tentative distance at push time.
type nodeItem[N comparable] struct {
	id   N
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance ascending, used with
// the lazy decrease-key strategy: improved distances push duplicates and
// outdated entries are ignored when popped.
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int           { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
