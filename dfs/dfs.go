package dfs

import "github.com/katalvlaran/grafo/core"

// walker encapsulates call-local state during one traversal.
type walker[N comparable] struct {
	graph  *core.Graph[N] // underlying graph, read-only
	detect bool           // abort on back edges
	state  map[N]int      // white / gray / black per node
	order  []N            // accumulated post-order
}

// frame is one entry of the explicit DFS stack: a node plus a cursor into
// its adjacency list.
type frame[N comparable] struct {
	id   N
	adj  []N // adjacency snapshot, insertion order
	next int // index of the next adjacency entry to examine
}

// Traverse performs a depth-first search over g and returns the visited
// nodes in post-order (a node is appended once its whole subtree is done).
//
// sources selects the traversal roots; nil or empty means every node of g in
// first-discovery order. Roots are processed in the given order, and
// adjacency is followed in insertion order, so the output is deterministic
// for a fixed construction sequence.
//
// With WithoutSourceNodes the sources are pre-marked visited and the walk is
// seeded from their neighbors instead. With WithCycleDetection a back edge
// aborts the whole traversal with ErrCycleDetected; that is the only error
// Traverse can return. A nil graph traverses as empty.
//
// Complexity: O(V + E) time, O(V) memory.
func Traverse[N comparable](g *core.Graph[N], sources []N, opts ...Option) ([]N, error) {
	// 1. Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. A nil graph has nothing to visit.
	if g == nil {
		return nil, nil
	}

	// 3. Default source set: every node, first-discovery order.
	if len(sources) == 0 {
		sources = g.Nodes()
	}

	w := &walker[N]{
		graph:  g,
		detect: cfg.DetectCycles,
		state:  make(map[N]int, g.NodeCount()),
		order:  make([]N, 0, g.NodeCount()),
	}

	// 4. Seed the walk. Excluded sources are settled up front so they never
	//    enter the output, then each of their neighbors roots its own tree.
	if !cfg.IncludeSources {
		for _, s := range sources {
			w.state[s] = black
		}
		for _, s := range sources {
			for _, n := range g.Adjacent(s) {
				if err := w.visit(n); err != nil {
					return nil, err
				}
			}
		}

		return w.order, nil
	}

	for _, s := range sources {
		if err := w.visit(s); err != nil {
			return nil, err
		}
	}

	return w.order, nil
}

// visit runs one iterative DFS tree rooted at root, using an explicit frame
// stack instead of native recursion so deep graphs cannot exhaust the call
// stack.
func (w *walker[N]) visit(root N) error {
	// Roots already settled by an earlier tree are skipped.
	if w.state[root] != white {
		return nil
	}

	w.state[root] = gray
	stack := []frame[N]{{id: root, adj: w.graph.Adjacent(root)}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		// Descend while the current frame still has unexamined neighbors.
		if f.next < len(f.adj) {
			n := f.adj[f.next]
			f.next++
			switch w.state[n] {
			case gray:
				// Back edge: n is on the active path.
				if w.detect {
					return ErrCycleDetected
				}
			case white:
				w.state[n] = gray
				stack = append(stack, frame[N]{id: n, adj: w.graph.Adjacent(n)})
			}

			continue
		}

		// Subtree complete: settle the node and record post-order.
		w.state[f.id] = black
		w.order = append(w.order, f.id)
		stack = stack[:len(stack)-1]
	}

	return nil
}
