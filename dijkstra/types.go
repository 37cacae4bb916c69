package dijkstra

import (
	"errors"
	"math"

	"github.com/arnodb/rhombus-sub000/hex"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrStorageNil indicates that a nil storage was passed to Dijkstra.
	ErrStorageNil = errors.New("dijkstra: storage is nil")

	// ErrSourceNotFound indicates that the source position is not stored.
	ErrSourceNotFound = errors.New("dijkstra: source position not found")

	// ErrNegativeWeight indicates that a negative step weight was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative step weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every step impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested target was not reached.
	ErrNoPath = errors.New("dijkstra: target not reached")

	// ErrPathNotRecorded indicates that predecessors were not kept.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded, use WithReturnPath")
)

// WeightFunc returns the cost of stepping from a position to an adjacent one.
type WeightFunc func(from, to hex.AxialVector) int64

// Options configures the behavior of the Dijkstra algorithm.
//
// Weight           - step cost; default 1 per step.
// ReturnPath       - if true, record predecessors for PathTo.
// MaxDistance      - positions beyond this cost are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold - steps with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64.
type Options struct {
	Weight           WeightFunc
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithWeight sets the step cost function. Panics if fn is nil.
func WithWeight(fn WeightFunc) Option {
	if fn == nil {
		panic("dijkstra: WithWeight(nil)")
	}
	return func(o *Options) {
		o.Weight = fn
	}
}

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats steps with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns unit weights, no predecessors and no limits.
func DefaultOptions() Options {
	return Options{
		Weight:           func(_, _ hex.AxialVector) int64 { return 1 },
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the outcome of a Dijkstra run.
type Result struct {
	// Source is the starting position.
	Source hex.AxialVector

	// Dist maps every settled position to its minimum cost.
	Dist map[hex.AxialVector]int64

	// Prev maps settled positions (source excluded) to their predecessor.
	// Nil unless WithReturnPath was set.
	Prev map[hex.AxialVector]hex.AxialVector
}

// Distance returns the cost to pos and whether it was reached.
func (r *Result) Distance(pos hex.AxialVector) (int64, bool) {
	d, ok := r.Dist[pos]
	return d, ok
}

// PathTo rebuilds the route from Source to dest, both included.
func (r *Result) PathTo(dest hex.AxialVector) ([]hex.AxialVector, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, ErrNoPath
	}
	var path []hex.AxialVector
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
