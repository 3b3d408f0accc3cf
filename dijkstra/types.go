package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra and Result.PathTo.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist
	// in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates that a negative edge weight was
	// encountered; Dijkstra's invariants do not hold on such graphs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an option received an invalid
	// value, e.g. a negative MaxDistance.
	ErrOptionViolation = errors.New("dijkstra: invalid option value")

	// ErrNoPath is returned by Result.PathTo when dest is not reachable
	// from the source.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Options configures a Dijkstra run. Zero values mean "no limit".
type Options[K comparable] struct {
	// Ctx is checked once per heap extraction; cancellation aborts the
	// run with ctx.Err().
	Ctx context.Context

	// MaxDistance caps exploration: vertices whose settled distance would
	// exceed it stay unreachable (+Inf). Default is math.Inf(1), no cap.
	MaxDistance float64

	// err records an invalid option value; surfaced by Dijkstra before
	// any work happens.
	err error
}

// Option adjusts Options via the functional-options pattern.
type Option[K comparable] func(*Options[K])

// DefaultOptions returns the baseline configuration: background context
// and no distance cap.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// WithContext attaches ctx for cancellation and deadline control.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the explored radius at max. Vertices farther than
// max from the source keep Dist = +Inf. Negative max yields
// ErrOptionViolation.
func WithMaxDistance[K comparable](max float64) Option[K] {
	return func(o *Options[K]) {
		if max < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDistance = max
	}
}

// Result aggregates the outcome of a Dijkstra run.
type Result[K comparable] struct {
	// Source is the vertex distances are measured from.
	Source K

	// Dist maps every graph vertex to its shortest distance from Source;
	// unreachable vertices carry math.Inf(1).
	Dist map[K]float64

	// Prev maps each settled vertex to its predecessor on one shortest
	// path. The source and unreachable vertices are absent.
	Prev map[K]K
}

// PathTo reconstructs the shortest path Source → dest by walking Prev
// backwards. Returns ErrNoPath when dest was never reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if d, ok := r.Dist[dest]; !ok || math.IsInf(d, 1) {
		return nil, ErrNoPath
	}
	path := []K{dest}
	cur := dest
	for cur != r.Source {
		p, ok := r.Prev[cur]
		if !ok {
			return nil, ErrNoPath
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
