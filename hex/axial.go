package hex

import "fmt"

// AxialVector is a position (or displacement) on the hexagonal lattice
// expressed with two axes. It is a comparable value type and can be used
// directly as a map key.
type AxialVector struct {
	q, r int
}

// NewAxialVector returns the axial vector (q, r).
func NewAxialVector(q, r int) AxialVector {
	return AxialVector{q: q, r: r}
}

// Q returns the first axial component.
func (a AxialVector) Q() int { return a.q }

// R returns the second axial component.
func (a AxialVector) R() int { return a.r }

// Add returns a + o.
func (a AxialVector) Add(o AxialVector) AxialVector {
	return AxialVector{q: a.q + o.q, r: a.r + o.r}
}

// Sub returns a - o.
func (a AxialVector) Sub(o AxialVector) AxialVector {
	return AxialVector{q: a.q - o.q, r: a.r - o.r}
}

// Scale returns k·a.
func (a AxialVector) Scale(k int) AxialVector {
	return AxialVector{q: a.q * k, r: a.r * k}
}

// Neighbor returns the adjacent position in direction dir (0..5).
// Panics if dir is out of range.
func (a AxialVector) Neighbor(dir int) AxialVector {
	return a.Add(AxialDirection(dir))
}

// Distance returns the number of steps between a and o on the lattice.
// Computed through the cubic embedding.
// Complexity: O(1).
func (a AxialVector) Distance(o AxialVector) int {
	return a.Cubic().Distance(o.Cubic())
}

// Cubic converts a to cubic coordinates (x=q, z=r, y=-q-r).
func (a AxialVector) Cubic() CubicVector {
	return CubicVector{x: a.q, y: -a.q - a.r, z: a.r}
}

// Ring returns an iterator over the positions at distance radius from a.
// Panics if radius is negative.
func (a AxialVector) Ring(radius int) *RingIter[AxialVector] {
	return newRingIter(a, radius, AxialDirection)
}

// BigRing returns an iterator over the centers of the big cells of radius
// cellRadius lying on the ring of big-cell radius radius around a.
// Panics if either radius is negative.
func (a AxialVector) BigRing(cellRadius, radius int) *BigRingIter[AxialVector] {
	return newBigRingIter(a, cellRadius, radius, AxialDirection)
}

// String implements fmt.Stringer.
func (a AxialVector) String() string {
	return fmt.Sprintf("(%d,%d)", a.q, a.r)
}
