// This file implements cloning and clearing of graph instances.
package core

// CloneEmpty returns a new Graph with the same orientation and vertex
// registry, but no edges. Registration order is preserved.
// Complexity: O(V).
func (g *Graph[K]) CloneEmpty() *Graph[K] {
	clone := &Graph[K]{
		directed: g.directed,
		order:    make([]K, len(g.order)),
		present:  make(map[K]struct{}, len(g.present)),
		adj:      make(map[K][]Arc[K], len(g.adj)),
	}
	copy(clone.order, g.order)
	for k := range g.present {
		clone.present[k] = struct{}{}
	}

	return clone
}

// Clone returns an independent deep copy: orientation, vertices, arcs,
// and edge count. Mutating either graph never touches the other, which
// makes Clone the supported way to keep editing a graph while algorithms
// read a frozen snapshot.
// Complexity: O(V+E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := g.CloneEmpty()
	for u, arcs := range g.adj {
		dup := make([]Arc[K], len(arcs))
		copy(dup, arcs)
		clone.adj[u] = dup
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state, preserving the orientation
// chosen at construction.
// Complexity: O(1).
func (g *Graph[K]) Clear() {
	g.order = nil
	g.present = make(map[K]struct{})
	g.adj = make(map[K][]Arc[K])
	g.edgeCount = 0
}
