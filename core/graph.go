// This file implements vertex and edge mutation plus the read-only query
// surface the algorithm packages build on.
package core

import "fmt"

// AddVertex registers k if absent. Adding an existing vertex is a no-op,
// never an error.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(k K) {
	if _, exists := g.present[k]; exists {
		return
	}
	g.present[k] = struct{}{}
	g.order = append(g.order, k)
}

// HasVertex reports whether k is registered.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(k K) bool {
	_, ok := g.present[k]

	return ok
}

// AddEdge wires u→v with DefaultWeight unless WithWeight overrides it.
// Both endpoints must already be registered: unknown endpoints fail with
// ErrVertexNotFound, and a negative weight fails with ErrNegativeWeight.
// In an undirected graph the mirror arc v→u is appended as well, except
// for self-loops, which are stored once.
//
// Parallel edges are not suppressed; each call appends independent arcs.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K, opts ...EdgeOption) error {
	// 1. Validate endpoints before touching any state.
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	// 2. Resolve per-edge parameters.
	spec := edgeSpec{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.weight < 0 {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, u, v, spec.weight)
	}

	// 3. Append the arc, and its mirror for undirected non-loop edges.
	g.adj[u] = append(g.adj[u], Arc[K]{To: v, Weight: spec.weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Arc[K]{To: u, Weight: spec.weight, mirror: true})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one arc u→v exists. Unknown endpoints
// simply report false.
// Complexity: O(deg(u)).
func (g *Graph[K]) HasEdge(u, v K) bool {
	for _, a := range g.adj[u] {
		if a.To == v {
			return true
		}
	}

	return false
}

// RemoveEdge deletes every arc between u and v: all parallel edges at
// once and, in an undirected graph, the mirrored arcs too, keeping the
// mirrored-pair invariant. Returns ErrVertexNotFound for unknown
// endpoints and ErrEdgeNotFound when no arc connects them.
// Complexity: O(deg(u)+deg(v)).
func (g *Graph[K]) RemoveEdge(u, v K) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	// Drop u→v arcs; count logical edges among them (mirrors excluded).
	removed := g.dropArcs(u, v)
	if !g.directed && u != v {
		removed += g.dropArcs(v, u)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, u, v)
	}
	g.edgeCount -= removed

	return nil
}

// dropArcs removes all from→to arcs in place and returns how many of
// them were logical edges (non-mirror arcs).
func (g *Graph[K]) dropArcs(from, to K) int {
	arcs := g.adj[from]
	kept := arcs[:0]
	logical := 0
	for _, a := range arcs {
		if a.To == to {
			if !a.mirror {
				logical++
			}
			continue
		}
		kept = append(kept, a)
	}
	g.adj[from] = kept

	return logical
}

// RemoveVertex deletes k and every incident edge, directed or mirrored.
// Returns ErrVertexNotFound when k is not registered.
// Complexity: O(V+E).
func (g *Graph[K]) RemoveVertex(k K) error {
	if !g.HasVertex(k) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, k)
	}

	// 1. Account for edges leaving k (self-loops live only here).
	for _, a := range g.adj[k] {
		if !a.mirror {
			g.edgeCount--
		}
	}
	delete(g.adj, k)

	// 2. Strip arcs pointing at k from every other vertex. In a directed
	//    graph these are distinct logical edges; in an undirected graph
	//    only non-mirror arcs are (their mirrors sat in k's deleted list).
	for from, arcs := range g.adj {
		kept := arcs[:0]
		for _, a := range arcs {
			if a.To == k {
				if !a.mirror {
					g.edgeCount--
				}
				continue
			}
			kept = append(kept, a)
		}
		g.adj[from] = kept
	}

	// 3. Unregister the vertex itself.
	delete(g.present, k)
	for i, id := range g.order {
		if id == k {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Neighbors returns u's arcs exactly as inserted: the insertion order is
// the tie-break order every algorithm in this module relies on. The slice
// is a copy; callers may keep or reorder it freely.
// Complexity: O(deg(u)).
func (g *Graph[K]) Neighbors(u K) ([]Arc[K], error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	arcs := g.adj[u]
	out := make([]Arc[K], len(arcs))
	copy(out, arcs)

	return out, nil
}

// Vertices returns all registered keys in registration order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph[K]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of logical edges: a mirrored undirected
// pair counts once, each parallel edge counts separately.
func (g *Graph[K]) EdgeCount() int { return g.edgeCount }

// Edges enumerates every logical edge in the orientation it was added:
// vertices in registration order, arcs in insertion order, mirror arcs
// skipped so an undirected edge appears exactly once.
// Complexity: O(V+E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edgeCount)
	for _, u := range g.order {
		for _, a := range g.adj[u] {
			if a.mirror {
				continue
			}
			out = append(out, Edge[K]{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return out
}
