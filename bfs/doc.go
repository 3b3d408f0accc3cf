// Package bfs provides breadth-first search over a core.Graph, returning
// the first-visit order, hop-count distances, and parent links.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence, start first, each vertex at most once
//   - Depth:  map from vertex → distance (edges) from the start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Vertices unreachable from the start never appear in any of the three.
//   - Functional hooks at three stages: OnEnqueue, OnDequeue, OnVisit
//     (the last may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor and a WithMaxDepth limit.
//
// Determinism
//
//	core.Neighbors returns arcs in insertion order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set, and result maps
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartVertexNotFound if the start vertex is not registered.
//   - ErrOptionViolation     if an invalid Option was supplied.
//   - ErrNeighbors           if neighbor lookup fails mid-traversal.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
