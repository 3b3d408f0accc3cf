// Package dfs implements depth-first search on an explicit frame stack.
package dfs

import (
	"fmt"

	"github.com/nervalan/quiver/core"
)

// frame is one level of the simulated recursion: a vertex, its arcs in
// stored order, and the index of the next arc to consider.
type frame[K comparable] struct {
	v     K
	arcs  []core.Arc[K]
	next  int
	depth int
}

// dfsWalker encapsulates state during one DFS run.
type dfsWalker[K comparable] struct {
	graph   *core.Graph[K]
	opts    Options[K]
	stack   []frame[K]
	visited map[K]bool
	res     *Result[K]
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it covers all disconnected components in registration order instead.
// The result's Order is the pre-order discovery sequence, identical to
// what recursive descent over the same adjacency lists would produce.
func DFS[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// 4. Initialize walker with capacity hints
	n := g.VertexCount()
	w := &dfsWalker[K]{
		graph:   g,
		opts:    o,
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.visited[v] {
				if err := w.walk(v); err != nil {
					return nil, err
				}
			}
		}
	} else {
		if err := w.walk(start); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// walk runs the explicit-stack descent from root. Each frame remembers
// how far through its adjacency list it got, so the traversal resumes
// exactly where recursion would after a child returns.
func (w *dfsWalker[K]) walk(root K) error {
	if err := w.discover(root, 0, root, false); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.arcs) {
			// all neighbors explored: post-order hook, then pop
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %v: %w", top.v, err)
				}
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		arc := top.arcs[top.next]
		top.next++

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(arc.To) {
			continue
		}
		// Depth limit: do not descend past it
		childDepth := top.depth + 1
		if w.opts.MaxDepth >= 0 && childDepth > w.opts.MaxDepth {
			continue
		}
		if w.visited[arc.To] {
			continue
		}
		if err := w.discover(arc.To, childDepth, top.v, true); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, records it in pre-order, fires OnVisit, and
// pushes its frame so its neighbors are explored next.
func (w *dfsWalker[K]) discover(v K, depth int, parent K, hasParent bool) error {
	w.visited[v] = true
	w.res.Depth[v] = depth
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	arcs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%v): %w", v, err)
	}
	w.stack = append(w.stack, frame[K]{v: v, arcs: arcs, depth: depth})

	return nil
}
