// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to
//     every reachable vertex in O((V + E) log V) time, where V = |vertices|
//     and E = |edges|.
//   - A min-heap (container/heap) always expands the next-closest frontier
//     vertex. Instead of a decrease-key operation the heap accepts duplicate
//     entries and skips stale ones on extraction ("lazy decrease-key").
//   - Works on directed and undirected graphs alike; an undirected edge is
//     traversable in both directions at the same cost.
//
// Determinism:
//
//   - Heap ties (equal distances) are broken by insertion sequence, so two
//     runs over the same graph always settle vertices in the same order and
//     produce identical predecessor maps.
//
// Results:
//
//   - Result.Dist holds a distance for every vertex of the graph; vertices
//     unreachable from the source carry math.Inf(1).
//   - Result.Prev maps each settled vertex (except the source) to its
//     predecessor on one shortest path. Absence from the map means "no
//     predecessor": the vertex is the source or unreachable.
//   - Result.PathTo rebuilds the vertex sequence source → dest in
//     O(path length).
//
// Errors (sentinel):
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if the source vertex is absent from the graph.
//   - ErrNegativeWeight  if any edge carries a negative weight.
//   - ErrOptionViolation if an option received an invalid value.
//   - ErrNoPath          from Result.PathTo when dest is unreachable.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist["D"])
//	path, _ := res.PathTo("D")
//
// See bfs for unweighted shortest paths (fewest hops) and toposort for
// dependency ordering on DAGs.
package dijkstra
