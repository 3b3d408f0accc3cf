// Package core provides the fundamental in-memory Graph implementation:
// a generic, insertion-ordered adjacency list supporting directed and
// undirected orientation, float64 weights, parallel edges, and self-loops.
//
// What
//
//   - Graph[K comparable]: vertex keys are any comparable caller type
//     (int, string, small structs); no assumption about representation.
//   - Explicit registration: AddEdge never auto-creates vertices; wiring
//     an unknown endpoint fails with ErrVertexNotFound. Use FromEdges when
//     you want bulk construction without the ceremony.
//   - Orientation is fixed at construction (WithDirected) and applies to
//     every edge. Undirected graphs store each edge as a mirrored pair of
//     arcs sharing one weight; removing the edge removes both arcs.
//   - Parallel edges are kept as independent arcs; self-loops are stored
//     once and count once toward degree.
//
// Determinism
//
//	Vertices() enumerates keys in registration order and Neighbors()
//	returns arcs in insertion order. Every algorithm package in this
//	module breaks ties in that order, so results are reproducible.
//
// Concurrency
//
//	A Graph is plain data: it is NOT safe for concurrent mutation. Build
//	it first, then treat it as read-only input; concurrent read-only
//	algorithm runs over an unchanging Graph are safe because no call
//	shares scratch state. Use Clone when one goroutine must keep mutating.
//
// Errors
//
//   - ErrVertexNotFound – operation referenced an unregistered vertex.
//   - ErrEdgeNotFound   – RemoveEdge found no arc between the endpoints.
//   - ErrNegativeWeight – WithWeight was given a weight below zero.
package core
