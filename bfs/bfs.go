// Package bfs implements breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/nervalan/quiver/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	v     K
	depth int
}

// walker encapsulates mutable BFS state for a single run; nothing is
// shared between calls, so concurrent runs over one graph are safe.
type walker[K comparable] struct {
	graph   *core.Graph[K]
	opts    Options[K]
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with the start vertex (no parent) and run the loop.
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem[K]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[K]) dequeue() queueItem[K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors in stored order, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %v: %v", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	for _, arc := range neighbors {
		if !w.opts.FilterNeighbor(item.v, arc.To) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.visited[arc.To] {
			w.visited[arc.To] = true
			w.res.Depth[arc.To] = nextDepth
			w.res.Parent[arc.To] = item.v
			w.opts.OnEnqueue(arc.To, nextDepth)
			w.queue = append(w.queue, queueItem[K]{v: arc.To, depth: nextDepth})
		}
	}

	return nil
}
