// Package dfs option and result types for depth-first search.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type Options[K comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(v K) error

	// OnExit, if non-nil, is invoked after all of a vertex's descendants
	// have been explored (post-order). Returning an error aborts.
	OnExit func(v K) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// descending. Return false to skip that arc.
	FilterNeighbor func(v K) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex
	// in registration order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filtering, and single-source traversal.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context for DFS traversal. A nil context has no
// effect (Background is retained).
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[K comparable](fn func(v K) error) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit[K comparable](fn func(v K) error) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[K comparable](fn func(v K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest mode: every unvisited vertex becomes
// a new root, in registration order. The start argument is ignored.
func WithFullTraversal[K comparable]() Option[K] {
	return func(o *Options[K]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []K

	// Depth maps each visited vertex to its discovery depth in edges.
	Depth map[K]int

	// Parent maps each visited vertex to the vertex that discovered it.
	// Roots have no entry.
	Parent map[K]K
}
