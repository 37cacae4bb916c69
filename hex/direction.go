package hex

import "fmt"

// NumDirections is the number of unit directions on the hexagonal lattice.
const NumDirections = 6

// axialDirections lists the unit vectors in direction order.
// Entry i and entry i+3 are opposite.
var axialDirections = [NumDirections]AxialVector{
	{q: 1, r: 0},
	{q: 1, r: -1},
	{q: 0, r: -1},
	{q: -1, r: 0},
	{q: -1, r: 1},
	{q: 0, r: 1},
}

var cubicDirections = [NumDirections]CubicVector{
	{x: 1, y: -1, z: 0},
	{x: 1, y: 0, z: -1},
	{x: 0, y: 1, z: -1},
	{x: -1, y: 1, z: 0},
	{x: -1, y: 0, z: 1},
	{x: 0, y: -1, z: 1},
}

// AxialDirection returns the unit axial vector of direction dir.
// Panics if dir is not in [0,6).
func AxialDirection(dir int) AxialVector {
	checkDirection(dir)
	return axialDirections[dir]
}

// CubicDirection returns the unit cubic vector of direction dir.
// Panics if dir is not in [0,6).
func CubicDirection(dir int) CubicVector {
	checkDirection(dir)
	return cubicDirections[dir]
}

// OppositeDirection returns (dir + 3) mod 6.
func OppositeDirection(dir int) int {
	checkDirection(dir)
	return (dir + NumDirections/2) % NumDirections
}

func checkDirection(dir int) {
	if dir < 0 || dir >= NumDirections {
		panic(fmt.Sprintf("hex: direction must be in [0,%d), got %d", NumDirections, dir))
	}
}

func checkRadius(name string, radius int) {
	if radius < 0 {
		panic(fmt.Sprintf("hex: %s must be non-negative, got %d", name, radius))
	}
}
