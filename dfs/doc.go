// Package dfs implements depth-first search (single-source and forest)
// over a core.Graph, reporting the pre-order visit sequence.
//
// What
//
//   - Visit a vertex, then explore its first unvisited neighbor in arc
//     insertion order all the way down before moving to the next one.
//   - Returns a Result containing:
//   - Order:  pre-order visit sequence, start first
//   - Depth:  map from vertex → discovery depth (edges from start)
//   - Parent: map from vertex → the vertex that discovered it
//   - Unreachable vertices never appear; each vertex appears at most once.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order), both may abort.
//   - Limits: WithMaxDepth, WithFilterNeighbor, cancellation via context.
//   - WithFullTraversal restarts from every unvisited vertex in
//     registration order, covering disconnected components.
//
// Implementation note
//
//	The walk runs on an explicit stack of (vertex, next-arc-index)
//	frames rather than goroutine recursion, so memory stays O(V) and
//	deep graphs cannot overflow the call stack. The produced order is
//	exactly what the recursive formulation would yield.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack and result maps
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start vertex is missing.
//   - context.Canceled        if the context is done.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
