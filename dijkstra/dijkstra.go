package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/nervalan/quiver/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Validation order:
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be well-formed (ErrOptionViolation).
//  3. source must exist in g (ErrSourceNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight),
//     detected by an O(E) pre-scan before any relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option[K]) (*Result[K], error) {
	// 1) Validate the graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply functional options and surface any recorded violation.
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate the source vertex.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	// 4) Pre-scan edges so a poisoned graph fails before partial work.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %v->%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Initialize state and run the main loop.
	vertices := g.Vertices()
	r := &runner[K]{
		g:   g,
		cfg: cfg,
		res: &Result[K]{
			Source: source,
			Dist:   make(map[K]float64, len(vertices)),
			Prev:   make(map[K]K, len(vertices)),
		},
		settled: make(map[K]struct{}, len(vertices)),
	}
	for _, v := range vertices {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	if err := r.run(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner[K comparable] struct {
	g       *core.Graph[K]
	cfg     Options[K]
	res     *Result[K]
	settled map[K]struct{}
	pq      nodePQ[K]
	seq     int // monotone push counter, breaks equal-distance heap ties
}

// push enqueues (v, dist) with the next sequence number.
func (r *runner[K]) push(v K, dist float64) {
	heap.Push(&r.pq, &nodeItem[K]{v: v, dist: dist, seq: r.seq})
	r.seq++
}

// run extracts the closest unsettled vertex and relaxes its arcs until the
// heap drains or the context is cancelled.
func (r *runner[K]) run() error {
	for r.pq.Len() > 0 {
		// 1) Honor cancellation once per extraction.
		if err := r.cfg.Ctx.Err(); err != nil {
			return err
		}

		// 2) Pop the closest frontier entry; drop it if stale.
		item := heap.Pop(&r.pq).(*nodeItem[K])
		if _, done := r.settled[item.v]; done {
			continue
		}
		r.settled[item.v] = struct{}{}

		// 3) Relax every arc leaving the settled vertex.
		if err := r.relax(item.v); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the tentative distance of each neighbor of u.
// Improvements push a fresh heap entry; stale entries are filtered on pop.
func (r *runner[K]) relax(u K) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}
	base := r.res.Dist[u]
	for _, a := range arcs {
		if a.Weight < 0 {
			return fmt.Errorf("%w: %v->%v weight=%v", ErrNegativeWeight, u, a.To, a.Weight)
		}
		cand := base + a.Weight
		if cand > r.cfg.MaxDistance {
			continue
		}
		// Strict improvement only, so equal-cost rediscoveries keep the
		// first predecessor and no duplicate entry is pushed.
		if cand >= r.res.Dist[a.To] {
			continue
		}
		r.res.Dist[a.To] = cand
		r.res.Prev[a.To] = u
		r.push(a.To, cand)
	}

	return nil
}

// nodeItem is a heap entry: a vertex with its tentative distance at push
// time. Entries are never updated in place; a better distance pushes a new
// entry and the old one is discarded when popped ("lazy decrease-key").
type nodeItem[K comparable] struct {
	v    K
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ[K comparable] []*nodeItem[K]

func (pq nodePQ[K]) Len() int { return len(pq) }

func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K])) }

func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
