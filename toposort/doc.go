// Package toposort produces a topological ordering of a directed graph
// using Kahn's algorithm.
//
// What it does:
//
//   - TopoSort returns the vertices of a directed acyclic graph in an order
//     where every arc u->v places u before v.
//   - The run is driven by in-degrees: vertices with no incoming arcs are
//     emitted first, their outgoing arcs are removed, and any neighbor whose
//     in-degree drops to zero joins the queue.
//   - If some vertices are never emitted the graph contains a cycle and
//     TopoSort fails with ErrCycleDetected.
//
// Determinism:
//
//   - The zero in-degree queue is seeded in vertex registration order and
//     consumed FIFO, so repeated runs over the same graph yield the same
//     ordering.
//
// Errors (sentinel):
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrUndirectedGraph  if the graph is undirected; topological order is
//     only defined for digraphs.
//   - ErrCycleDetected    if the graph contains a directed cycle.
//
// Complexity: O(V + E) time, O(V) extra space.
package toposort
