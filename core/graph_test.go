package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nervalan/quiver/core"
)

// TestAddVertex_Idempotent verifies repeated registration is a no-op.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("A")

	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, []string{"A"}, g.Vertices())
}

// TestVertices_RegistrationOrder checks deterministic enumeration order.
func TestVertices_RegistrationOrder(t *testing.T) {
	g := core.New[int]()
	for _, v := range []int{7, 3, 9, 1} {
		g.AddVertex(v)
	}

	assert.Equal(t, []int{7, 3, 9, 1}, g.Vertices())
}

// TestAddEdge_UnknownVertex ensures edges never auto-create endpoints.
func TestAddEdge_UnknownVertex(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")

	err := g.AddEdge("A", "B")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	err = g.AddEdge("Z", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// no partial state left behind
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_DefaultWeight verifies omitted weights become DefaultWeight.
func TestAddEdge_DefaultWeight(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, core.DefaultWeight, nbrs[0].Weight)
}

// TestAddEdge_NegativeWeight ensures negative weights are rejected at insertion.
func TestAddEdge_NegativeWeight(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")

	err := g.AddEdge("A", "B", core.WithWeight(-2))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.False(t, g.HasEdge("A", "B"))
}

// TestAddEdge_UndirectedMirror checks the mirrored-pair invariant:
// after AddEdge(u,v,w), Neighbors(u) contains (v,w) and Neighbors(v) (u,w).
func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("u")
	g.AddVertex("v")
	require.NoError(t, g.AddEdge("u", "v", core.WithWeight(2.5)))

	uN, err := g.Neighbors("u")
	require.NoError(t, err)
	vN, err := g.Neighbors("v")
	require.NoError(t, err)

	require.Len(t, uN, 1)
	require.Len(t, vN, 1)
	assert.Equal(t, "v", uN[0].To)
	assert.Equal(t, 2.5, uN[0].Weight)
	assert.Equal(t, "u", vN[0].To)
	assert.Equal(t, 2.5, vN[0].Weight)

	// one logical edge, visible from both sides
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("u", "v"))
	assert.True(t, g.HasEdge("v", "u"))
}

// TestAddEdge_DirectedNoMirror verifies directed edges stay one-way.
func TestAddEdge_DirectedNoMirror(t *testing.T) {
	g := core.New[string](core.WithDirected())
	g.AddVertex("u")
	g.AddVertex("v")
	require.NoError(t, g.AddEdge("u", "v"))

	assert.True(t, g.HasEdge("u", "v"))
	assert.False(t, g.HasEdge("v", "u"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_SelfLoopStoredOnce checks a self-loop is a single arc even
// in an undirected graph.
func TestAddEdge_SelfLoopStoredOnce(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("X")
	require.NoError(t, g.AddEdge("X", "X", core.WithWeight(3)))

	nbrs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	assert.Equal(t, "X", nbrs[0].To)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_ParallelEdges ensures duplicates are kept as independent arcs.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g := core.New[string](core.WithDirected())
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(4)))
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	// insertion order preserved
	assert.Equal(t, 4.0, nbrs[0].Weight)
	assert.Equal(t, 1.0, nbrs[1].Weight)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestNeighbors_UnknownVertex ensures queries fail fast, never silently.
func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.New[string]()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighbors_ReturnsCopy verifies callers cannot corrupt internal state.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	nbrs[0].To = "corrupted"

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, "B", again[0].To)
}

// TestRemoveEdge_Undirected verifies removing one direction removes both.
func TestRemoveEdge_Undirected(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("u")
	g.AddVertex("v")
	require.NoError(t, g.AddEdge("u", "v"))

	require.NoError(t, g.RemoveEdge("v", "u")) // mirror direction
	assert.False(t, g.HasEdge("u", "v"))
	assert.False(t, g.HasEdge("v", "u"))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestRemoveEdge_AllParallel ensures every parallel arc goes at once.
func TestRemoveEdge_AllParallel(t *testing.T) {
	g := core.New[string](core.WithDirected())
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 0, g.EdgeCount())
}

// TestRemoveEdge_Missing reports ErrEdgeNotFound, and unknown endpoints
// report ErrVertexNotFound first.
func TestRemoveEdge_Missing(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")

	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge("A", "ghost"), core.ErrVertexNotFound)
}

// TestRemoveVertex drops the vertex and every incident edge.
func TestRemoveVertex(t *testing.T) {
	g := core.New[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("B", "B"))

	require.NoError(t, g.RemoveVertex("B"))

	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.Equal(t, 0, g.EdgeCount())
	aN, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, aN)
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

// TestEdges_LogicalEnumeration checks undirected edges appear once, in
// the orientation they were added.
func TestEdges_LogicalEnumeration(t *testing.T) {
	g := core.New[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("C", "A", core.WithWeight(7)))

	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 2},
		{From: "C", To: "A", Weight: 7},
	}, g.Edges())
}

// TestFromEdges builds the same graph that manual registration would.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]core.Edge[int]{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 4},
	}, core.WithDirected())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(3, 2))
}

// TestFromEdges_NegativeWeight surfaces the insertion guard.
func TestFromEdges_NegativeWeight(t *testing.T) {
	_, err := core.FromEdges([]core.Edge[int]{{From: 1, To: 2, Weight: -1}})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

// TestClone_Independence verifies deep-copy semantics.
func TestClone_Independence(t *testing.T) {
	g := core.New[string]()
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B"))

	c := g.Clone()
	require.NoError(t, c.RemoveEdge("A", "B"))
	c.AddVertex("C")

	// original untouched
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 0, c.EdgeCount())
}

// TestCloneEmpty keeps vertices and orientation but no edges.
func TestCloneEmpty(t *testing.T) {
	g := core.New[string](core.WithDirected())
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B"))

	c := g.CloneEmpty()
	assert.True(t, c.Directed())
	assert.Equal(t, []string{"A", "B"}, c.Vertices())
	assert.Equal(t, 0, c.EdgeCount())
	assert.False(t, c.HasEdge("A", "B"))
}

// TestClear resets catalogs but preserves orientation.
func TestClear(t *testing.T) {
	g := core.New[string](core.WithDirected())
	g.AddVertex("A")
	g.AddVertex("B")
	require.NoError(t, g.AddEdge("A", "B"))

	g.Clear()
	assert.True(t, g.Directed())
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())
}

// TestStructKeys verifies any comparable key type works.
func TestStructKeys(t *testing.T) {
	type cell struct{ X, Y int }

	g := core.New[cell]()
	g.AddVertex(cell{0, 0})
	g.AddVertex(cell{0, 1})
	require.NoError(t, g.AddEdge(cell{0, 0}, cell{0, 1}))

	nbrs, err := g.Neighbors(cell{0, 0})
	require.NoError(t, err)
	require.Len(t, nbrs, 1)
	assert.Equal(t, cell{0, 1}, nbrs[0].To)
}
