// Package quiver is a small in-memory graph library: build directed or
// undirected weighted graphs over any comparable key type, then run the
// four classic algorithms on them.
//
// What's inside:
//
//	core/     – generic Graph[K], insertion-ordered adjacency lists,
//	            mirrored undirected edges, parallel edges, self-loops
//	bfs/      – breadth-first traversal with depth and parent maps
//	dfs/      – depth-first (pre-order) traversal on an explicit stack
//	dijkstra/ – single-source shortest paths, lazy decrease-key heap
//	toposort/ – Kahn topological ordering with cycle detection
//
// Why quiver?
//
//   - Deterministic: adjacency insertion order drives every tie-break,
//     so traversal orders are fully reproducible in tests.
//   - Pure Go: no cgo, no hidden deps.
//   - Minimal API: explicit vertex registration, sentinel errors,
//     functional options where behavior is tunable.
//
// A quiver, in the algebraic sense, is just a directed multigraph.
//
// Quick example:
//
//	g := core.New[string]()
//	for _, v := range []string{"A", "B", "C"} {
//	    g.AddVertex(v)
//	}
//	_ = g.AddEdge("A", "B", core.WithWeight(2))
//	res, _ := bfs.BFS(g, "A")
//
// Each algorithm package depends only on core's read-only query surface;
// none depends on another.
package quiver
