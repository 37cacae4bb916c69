package fov

import (
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
)

// PlaneVector is a point of the scaled plane on which every cell center and
// every cell corner has integer coordinates.
type PlaneVector struct {
	X, Y int
}

// PlaneFromAxial maps the center of cell a to the plane.
func PlaneFromAxial(a hex.AxialVector) PlaneVector {
	return PlaneVector{X: 2*a.Q() + a.R(), Y: -3 * a.R()}
}

// Add returns p + o.
func (p PlaneVector) Add(o PlaneVector) PlaneVector {
	return PlaneVector{X: p.X + o.X, Y: p.Y + o.Y}
}

// Turns reports which way one has to turn to go from direction p to
// direction o, based on the sign of their cross product.
func (p PlaneVector) Turns(o PlaneVector) Turn {
	switch cross := p.X*o.Y - p.Y*o.X; {
	case cross > 0:
		return TurnLeft
	case cross < 0:
		return TurnRight
	default:
		return TurnStraight
	}
}

func (p PlaneVector) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Turn is the orientation of a pair of plane vectors.
type Turn int

const (
	TurnLeft Turn = iota
	TurnStraight
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnStraight:
		return "straight"
	case TurnRight:
		return "right"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// hexPlaneVertices are the corners of a cell relative to its center, in
// contraction order.
var hexPlaneVertices = [hex.NumDirections]PlaneVector{
	{1, -1},
	{1, 1},
	{0, 2},
	{-1, 1},
	{-1, -1},
	{0, -2},
}

// polarIndexToPosition returns the offset of cell i on the ring of the
// given radius.
func polarIndexToPosition(i, radius int) hex.AxialVector {
	side := (i / radius) % hex.NumDirections
	offset := i % radius
	return hex.AxialDirection(side).Scale(radius).
		Add(hex.AxialDirection((side + 2) % hex.NumDirections).Scale(offset))
}
