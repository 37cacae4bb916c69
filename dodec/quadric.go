package dodec

import "fmt"

// NumDirections is the number of neighbors of a quadric position.
const NumDirections = 12

// QuadricVector is a position on the rhombic-dodecahedral lattice.
type QuadricVector struct {
	x, y, z, t int
}

// NewQuadricVector returns (x, y, z, t). Panics if the components do not sum
// to zero.
func NewQuadricVector(x, y, z, t int) QuadricVector {
	if x+y+z+t != 0 {
		panic(fmt.Sprintf("dodec: invalid quadric vector (%d,%d,%d,%d): components must sum to 0", x, y, z, t))
	}
	return QuadricVector{x: x, y: y, z: z, t: t}
}

var directions = [NumDirections]QuadricVector{
	{1, -1, 0, 0},
	{1, 0, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
	{0, 1, 0, -1},
	{0, 0, 1, -1},
	{-1, 1, 0, 0},
	{-1, 0, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{0, -1, 0, 1},
	{0, 0, -1, 1},
}

// Direction returns the unit vector of direction dir (0..11).
func Direction(dir int) QuadricVector {
	if dir < 0 || dir >= NumDirections {
		panic(fmt.Sprintf("dodec: direction must be in [0,%d), got %d", NumDirections, dir))
	}
	return directions[dir]
}

func (v QuadricVector) X() int { return v.x }
func (v QuadricVector) Y() int { return v.y }
func (v QuadricVector) Z() int { return v.z }
func (v QuadricVector) T() int { return v.t }

// Add returns v + o.
func (v QuadricVector) Add(o QuadricVector) QuadricVector {
	return QuadricVector{v.x + o.x, v.y + o.y, v.z + o.z, v.t + o.t}
}

// Sub returns v - o.
func (v QuadricVector) Sub(o QuadricVector) QuadricVector {
	return QuadricVector{v.x - o.x, v.y - o.y, v.z - o.z, v.t - o.t}
}

// Scale returns k·v.
func (v QuadricVector) Scale(k int) QuadricVector {
	return QuadricVector{v.x * k, v.y * k, v.z * k, v.t * k}
}

// Neighbor returns v + Direction(dir).
func (v QuadricVector) Neighbor(dir int) QuadricVector {
	return v.Add(Direction(dir))
}

// Distance returns (|dx| + |dy| + |dz| + |dt|) / 2.
func (v QuadricVector) Distance(o QuadricVector) int {
	d := v.Sub(o)
	return (abs(d.x) + abs(d.y) + abs(d.z) + abs(d.t)) / 2
}

// Sphere returns an iterator over the positions at distance radius from v.
// Panics if radius is negative.
func (v QuadricVector) Sphere(radius int) *SphereIter {
	if radius < 0 {
		panic(fmt.Sprintf("dodec: radius must be non-negative, got %d", radius))
	}
	return newSphereIter(radius, v)
}

// String implements fmt.Stringer.
func (v QuadricVector) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", v.x, v.y, v.z, v.t)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
