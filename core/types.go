// This file declares the Graph, Arc, and Edge types, sentinel errors,
// option types, and the constructors New and FromEdges.
package core

import (
	"errors"
	"fmt"
)

// DefaultWeight is the weight assigned to edges added without WithWeight.
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an unregistered vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates RemoveEdge found no edge between the endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Arc is one adjacency-list entry: a half-edge from its owning vertex.
//
// In an undirected graph every edge (u,v) with u != v appears as two
// arcs, one in u's list and one in v's; the second is an internal mirror
// and carries the same weight.
type Arc[K comparable] struct {
	// To is the neighbor this arc points at.
	To K

	// Weight is the edge weight shared by an arc and its mirror.
	Weight float64

	// mirror marks the reverse half of an undirected edge so logical
	// edge enumeration and counting see each edge exactly once.
	mirror bool
}

// Edge is a logical edge as reported by Edges: the pair of endpoints in
// the orientation they were added, plus the weight.
type Edge[K comparable] struct {
	From   K
	To     K
	Weight float64
}

// Option configures a Graph before creation.
type Option func(*config)

// config collects construction flags.
type config struct {
	directed bool
}

// WithDirected makes every edge added to the graph one-way (from→to).
// Without it the graph is undirected and edges are mirrored pairs.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeSpec)

// edgeSpec holds per-edge parameters resolved during AddEdge.
type edgeSpec struct {
	weight float64
}

// WithWeight sets the edge weight; without it the weight is DefaultWeight.
// Negative weights are rejected by AddEdge with ErrNegativeWeight.
func WithWeight(w float64) EdgeOption {
	return func(s *edgeSpec) { s.weight = w }
}

// Graph is the core in-memory graph data structure: a vertex registry in
// registration order plus per-vertex adjacency slices in insertion order.
//
// The zero value is not usable; construct with New or FromEdges.
type Graph[K comparable] struct {
	directed bool

	order   []K            // vertex keys in registration order
	present map[K]struct{} // membership index over order
	adj     map[K][]Arc[K] // per-vertex arcs in insertion order

	edgeCount int // logical edges (a mirrored pair counts once)
}

// New creates an empty Graph. By default the graph is undirected; pass
// WithDirected() for one-way edges.
// Complexity: O(1).
func New[K comparable](opts ...Option) *Graph[K] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		present:  make(map[K]struct{}),
		adj:      make(map[K][]Arc[K]),
	}
}

// FromEdges builds a Graph in one pass from (from, to, weight) triples,
// registering each endpoint before wiring it. It preserves the explicit
// registration invariant while keeping bulk construction convenient.
// Complexity: O(len(edges)).
func FromEdges[K comparable](edges []Edge[K], opts ...Option) (*Graph[K], error) {
	g := New[K](opts...)
	for _, e := range edges {
		g.AddVertex(e.From)
		g.AddVertex(e.To)
		if err := g.AddEdge(e.From, e.To, WithWeight(e.Weight)); err != nil {
			return nil, fmt.Errorf("core: FromEdges %v→%v: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Directed reports the orientation chosen at construction.
func (g *Graph[K]) Directed() bool { return g.directed }
