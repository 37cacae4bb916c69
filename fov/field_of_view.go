package fov

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// FieldOfView is an incremental shadow-casting engine on a hexagonal grid.
// The zero value is idle; call Start before anything else.
type FieldOfView struct {
	center hex.AxialVector
	radius int
	arcs   []Arc
}

// Start resets the engine to radius 1 around center. The two initial arcs
// cover the whole ring, one per half plane, and share the cell at index 3.
func (f *FieldOfView) Start(center hex.AxialVector) {
	f.center = center
	f.radius = 1
	f.arcs = append(f.arcs[:0],
		Arc{
			Start: ArcEnd{PolarIndex: 0, Vertex: PlaneVector{3, 0}},
			Stop:  ArcEnd{PolarIndex: 3, Vertex: PlaneVector{-3, 0}},
		},
		Arc{
			Start: ArcEnd{PolarIndex: 3, Vertex: PlaneVector{-3, 0}},
			Stop:  ArcEnd{PolarIndex: 6, Vertex: PlaneVector{3, 0}},
		},
	)
}

// NextRadius splits every arc at the obstacles of the current ring, projects
// the pieces onto the next ring and advances the radius. isObstacle receives
// absolute positions. Once every arc is gone the engine stays empty.
// Panics if Start was never called.
// Complexity: O(r) predicate calls for ring r.
func (f *FieldOfView) NextRadius(isObstacle func(hex.AxialVector) bool) {
	if f.radius == 0 {
		panic("fov: NextRadius called before Start")
	}
	split := make([]Arc, 0, len(f.arcs))
	for _, a := range f.arcs {
		split = a.split(split, f.center, f.radius, isObstacle)
	}
	f.arcs = f.arcs[:0]
	for _, a := range split {
		if e, ok := a.expand(f.radius); ok {
			f.arcs = append(f.arcs, e)
		}
	}
	f.radius++
}

// Center returns the position the engine was started at.
func (f *FieldOfView) Center() hex.AxialVector { return f.center }

// Radius returns the current ring radius, 0 before Start.
func (f *FieldOfView) Radius() int { return f.radius }

// Arcs returns a copy of the arcs of the current ring.
func (f *FieldOfView) Arcs() []Arc { return slices.Clone(f.arcs) }

// IsEmpty reports whether nothing is visible on the current ring and
// beyond.
func (f *FieldOfView) IsEmpty() bool { return len(f.arcs) == 0 }

// Offsets yields the visible cells of the current ring relative to the
// center, arc by arc, from start to stop. An arc never yields the same
// cell twice; the cells shared by two arcs (index 0 and index 3r) may be
// yielded once per arc. Offsets does not change the engine state.
func (f *FieldOfView) Offsets() iter.Seq[hex.AxialVector] {
	return func(yield func(hex.AxialVector) bool) {
		if f.radius == 0 {
			return
		}
		n := hex.NumDirections * f.radius
		for _, a := range f.arcs {
			first := a.Start.PolarIndex % n
			for i := a.Start.PolarIndex; i <= a.Stop.PolarIndex; i++ {
				if i > a.Start.PolarIndex && i%n == first {
					break
				}
				if !yield(polarIndexToPosition(i%n, f.radius)) {
					return
				}
			}
		}
	}
}

// Positions yields the same cells as Offsets as absolute positions.
func (f *FieldOfView) Positions() iter.Seq[hex.AxialVector] {
	return func(yield func(hex.AxialVector) bool) {
		for off := range f.Offsets() {
			if !yield(f.center.Add(off)) {
				return
			}
		}
	}
}

func (f *FieldOfView) String() string {
	return fmt.Sprintf("fov(center=%v radius=%d arcs=%d)", f.center, f.radius, len(f.arcs))
}

// Visible sweeps rings 1..maxRadius around center and returns every visible
// position, center included, sorted with storage.ComparePositions and
// without duplicates. Obstacles are visible themselves but hide what lies
// behind them.
// Complexity: O(maxRadius²).
func Visible(center hex.AxialVector, maxRadius int, isObstacle func(hex.AxialVector) bool) ([]hex.AxialVector, error) {
	if maxRadius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, maxRadius)
	}
	seen := storage.New[struct{}]()
	seen.Insert(center, struct{}{})
	if maxRadius == 0 {
		return seen.SortedPositions(), nil
	}

	var f FieldOfView
	f.Start(center)
	for {
		for p := range f.Positions() {
			seen.Insert(p, struct{}{})
		}
		if f.radius == maxRadius || f.IsEmpty() {
			break
		}
		f.NextRadius(isObstacle)
	}
	return seen.SortedPositions(), nil
}
