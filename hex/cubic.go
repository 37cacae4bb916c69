package hex

import "fmt"

// CubicVector is a hexagonal lattice position expressed with three axes
// whose components always sum to zero.
type CubicVector struct {
	x, y, z int
}

// NewCubicVector returns the cubic vector (x, y, z).
// Panics if x+y+z != 0.
func NewCubicVector(x, y, z int) CubicVector {
	if x+y+z != 0 {
		panic(fmt.Sprintf("hex: invalid cubic vector (%d,%d,%d): components must sum to 0", x, y, z))
	}
	return CubicVector{x: x, y: y, z: z}
}

// X returns the x component.
func (c CubicVector) X() int { return c.x }

// Y returns the y component.
func (c CubicVector) Y() int { return c.y }

// Z returns the z component.
func (c CubicVector) Z() int { return c.z }

// Add returns c + o.
func (c CubicVector) Add(o CubicVector) CubicVector {
	return CubicVector{x: c.x + o.x, y: c.y + o.y, z: c.z + o.z}
}

// Sub returns c - o.
func (c CubicVector) Sub(o CubicVector) CubicVector {
	return CubicVector{x: c.x - o.x, y: c.y - o.y, z: c.z - o.z}
}

// Scale returns k·c.
func (c CubicVector) Scale(k int) CubicVector {
	return CubicVector{x: c.x * k, y: c.y * k, z: c.z * k}
}

// Neighbor returns the adjacent position in direction dir (0..5).
func (c CubicVector) Neighbor(dir int) CubicVector {
	return c.Add(CubicDirection(dir))
}

// Distance returns (|dx| + |dy| + |dz|) / 2.
// Complexity: O(1).
func (c CubicVector) Distance(o CubicVector) int {
	return (abs(c.x-o.x) + abs(c.y-o.y) + abs(c.z-o.z)) / 2
}

// Axial converts c to axial coordinates (q=x, r=z).
func (c CubicVector) Axial() AxialVector {
	return AxialVector{q: c.x, r: c.z}
}

// Ring returns an iterator over the positions at distance radius from c.
func (c CubicVector) Ring(radius int) *RingIter[CubicVector] {
	return newRingIter(c, radius, CubicDirection)
}

// BigRing is the cubic counterpart of AxialVector.BigRing.
func (c CubicVector) BigRing(cellRadius, radius int) *BigRingIter[CubicVector] {
	return newBigRingIter(c, cellRadius, radius, CubicDirection)
}

// String implements fmt.Stringer.
func (c CubicVector) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.x, c.y, c.z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
