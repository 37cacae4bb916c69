package hex

import "iter"

// Vector is the arithmetic shared by AxialVector and CubicVector that the
// ring iterators rely on.
type Vector[V any] interface {
	comparable
	Add(V) V
	Scale(k int) V
}

// RingIter walks the ring of a given radius around a center.
//
// The walk starts at center + direction(4)·radius and follows side k along
// direction k for k = 0..5, radius steps per side. A radius of 0 yields the
// center once.
//
// RingIter is not safe for concurrent use.
type RingIter[V Vector[V]] struct {
	edgeLength int
	direction  int
	edgeIndex  int
	next       V
	dir        func(int) V
}

func newRingIter[V Vector[V]](center V, radius int, dir func(int) V) *RingIter[V] {
	checkRadius("radius", radius)
	return &RingIter[V]{
		edgeLength: radius,
		direction:  0,
		edgeIndex:  1,
		next:       center.Add(dir(4).Scale(radius)),
		dir:        dir,
	}
}

// Peek returns the position the next call to Next would return, without
// consuming it. ok is false once the ring is exhausted.
func (it *RingIter[V]) Peek() (v V, ok bool) {
	if it.direction < NumDirections {
		return it.next, true
	}
	return v, false
}

// Next returns the next position of the ring. ok is false once the ring is
// exhausted.
// Complexity: O(1).
func (it *RingIter[V]) Next() (v V, ok bool) {
	if it.direction >= NumDirections {
		return v, false
	}
	v = it.next
	it.next = v.Add(it.dir(it.direction))
	if it.edgeIndex < it.edgeLength {
		it.edgeIndex++
	} else {
		it.edgeIndex = 1
		it.direction++
		// a zero-length ring drains every remaining side at once
		for it.direction < NumDirections && it.edgeLength == 0 {
			it.direction++
		}
	}
	return v, true
}

// Len returns the total number of positions of the ring: 6·radius, or 1 for
// radius 0. It does not change while iterating.
func (it *RingIter[V]) Len() int {
	if it.edgeLength > 0 {
		return it.edgeLength * NumDirections
	}
	return 1
}

// All consumes the iterator as a range-over-func sequence.
func (it *RingIter[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// BigRingIter walks a ring on the lattice of big cells of radius cellRadius.
// Each step advances by dir(k)·(cellRadius+1) + dir(k+1)·cellRadius, so the
// visited positions are the centers of non-overlapping hexagons of radius
// cellRadius. With cellRadius == 0 it visits the same positions as RingIter.
type BigRingIter[V Vector[V]] struct {
	edgeLength int
	direction  int
	edgeIndex  int
	cellRadius int
	step       V
	next       V
	dir        func(int) V
}

func newBigRingIter[V Vector[V]](center V, cellRadius, radius int, dir func(int) V) *BigRingIter[V] {
	checkRadius("cell radius", cellRadius)
	checkRadius("radius", radius)
	it := &BigRingIter[V]{
		edgeLength: radius,
		direction:  0,
		edgeIndex:  1,
		cellRadius: cellRadius,
		dir:        dir,
	}
	it.step = it.sideVector(0)
	it.next = center.Add(dir(4).Scale(cellRadius + 1).Add(dir(5).Scale(cellRadius)).Scale(radius))
	return it
}

func (it *BigRingIter[V]) sideVector(side int) V {
	return it.dir(side).Scale(it.cellRadius + 1).Add(it.dir((side + 1) % NumDirections).Scale(it.cellRadius))
}

// Peek returns the next position without consuming it.
func (it *BigRingIter[V]) Peek() (v V, ok bool) {
	if it.direction < NumDirections {
		return it.next, true
	}
	return v, false
}

// Next returns the next big-cell center.
func (it *BigRingIter[V]) Next() (v V, ok bool) {
	if it.direction >= NumDirections {
		return v, false
	}
	v = it.next
	it.next = v.Add(it.step)
	if it.edgeIndex < it.edgeLength {
		it.edgeIndex++
	} else {
		it.edgeIndex = 1
		it.direction++
		for it.direction < NumDirections && it.edgeLength == 0 {
			it.direction++
		}
		if it.direction < NumDirections {
			it.step = it.sideVector(it.direction)
		}
	}
	return v, true
}

// Len returns 6·radius, or 1 for radius 0.
func (it *BigRingIter[V]) Len() int {
	if it.edgeLength > 0 {
		return it.edgeLength * NumDirections
	}
	return 1
}

// All consumes the iterator as a range-over-func sequence.
func (it *BigRingIter[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Disk returns every position at distance at most radius from center, ring
// by ring starting with the center itself.
// Complexity: O(radius²).
func Disk(center AxialVector, radius int) []AxialVector {
	checkRadius("radius", radius)
	out := make([]AxialVector, 0, 1+3*radius*(radius+1))
	for r := 0; r <= radius; r++ {
		for v := range center.Ring(r).All() {
			out = append(out, v)
		}
	}
	return out
}
