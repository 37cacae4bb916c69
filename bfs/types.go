// Package bfs provides tunable options and error definitions
// for breadth‐first search over a storage.RectHash.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start position is not stored.
	ErrStartNotFound = errors.New("bfs: start position not found")

	// ErrStorageNil is returned if a nil storage pointer is passed.
	ErrStorageNil = errors.New("bfs: storage is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for positions the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a position is enqueued, before visiting.
	// Receives the position and its depth from the start.
	OnEnqueue func(pos hex.AxialVector, depth int)

	// OnDequeue is called immediately before visiting a position.
	OnDequeue func(pos hex.AxialVector, depth int)

	// OnVisit is called when visiting a position. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(pos hex.AxialVector, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	// Called for each stored neighbor of the current position.
	FilterNeighbor func(curr, neighbor hex.AxialVector) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(hex.AxialVector, int) {},
		OnDequeue:      func(hex.AxialVector, int) {},
		OnVisit:        func(hex.AxialVector, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ hex.AxialVector) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(pos hex.AxialVector, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(pos hex.AxialVector, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(pos hex.AxialVector, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor hex.AxialVector) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: positions visited, in visit sequence.
//   - Depth: map from position to its distance (in steps) from the start.
//   - Parent: map from position to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []hex.AxialVector
	Depth  map[hex.AxialVector]int
	Parent map[hex.AxialVector]hex.AxialVector
}

// PathTo reconstructs the path from the start position to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest hex.AxialVector) ([]hex.AxialVector, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []hex.AxialVector{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
