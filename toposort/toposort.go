package toposort

import (
	"context"
	"errors"

	"github.com/nervalan/quiver/core"
)

// Sentinel errors returned by TopoSort.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to TopoSort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrUndirectedGraph indicates that the graph is undirected;
	// topological order requires a digraph.
	ErrUndirectedGraph = errors.New("toposort: graph must be directed")

	// ErrCycleDetected indicates that the graph contains a directed cycle
	// and therefore admits no topological order.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Option adjusts a TopoSort run.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext attaches ctx for cancellation and deadline control.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopoSort orders the vertices of the directed graph g so that every arc
// u->v places u before v (Kahn's algorithm).
//
// The zero in-degree queue is seeded in registration order and consumed
// FIFO; self-loops and cycles leave their vertices unemitted and surface
// as ErrCycleDetected.
//
// Complexity: O(V + E) time, O(V) space.
func TopoSort[K comparable](g *core.Graph[K], opts ...Option) ([]K, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	cfg := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Count in-degrees over all arcs. Parallel arcs count once each, so
	//    a vertex is released only after every incoming arc is consumed.
	vertices := g.Vertices()
	inDegree := make(map[K]int, len(vertices))
	for _, v := range vertices {
		inDegree[v] = 0
	}
	for _, v := range vertices {
		arcs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			inDegree[a.To]++
		}
	}

	// 3) Seed the FIFO queue with zero in-degree vertices, registration
	//    order first.
	queue := make([]K, 0, len(vertices))
	for _, v := range vertices {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 4) Emit, peel outgoing arcs, release newly freed vertices.
	order := make([]K, 0, len(vertices))
	for len(queue) > 0 {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		arcs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			inDegree[a.To]--
			if inDegree[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// 5) Any vertex left unemitted sits on a cycle.
	if len(order) != len(vertices) {
		return nil, ErrCycleDetected
	}

	return order, nil
}
