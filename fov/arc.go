package fov

import "github.com/arnodb/rhombus-sub000/hex"

// ArcEnd is one boundary of an Arc: the polar index of the boundary cell on
// the current ring and the plane vector of the sight line through it.
type ArcEnd struct {
	PolarIndex int
	Vertex     PlaneVector
}

// Arc is a contiguous visible span of a ring, from Start to Stop inclusive.
type Arc struct {
	Start ArcEnd
	Stop  ArcEnd
}

// isZeroAngle reports whether the arc no longer covers any direction.
// Two collinear lines pointing the same way close the arc; two pointing in
// opposite directions describe a half plane and keep it open.
func (a Arc) isZeroAngle() bool {
	if a.Start.PolarIndex > a.Stop.PolarIndex {
		return true
	}
	start, stop := a.Start.Vertex, a.Stop.Vertex
	switch start.Turns(stop) {
	case TurnRight:
		return true
	case TurnStraight:
		return (start.X < 0 && stop.X < 0) || (start.X > 0 && stop.X > 0) ||
			(start.Y < 0 && stop.Y < 0) || (start.Y > 0 && stop.Y > 0)
	}
	return false
}

// contractStart rotates the start line counter-clockwise past every corner
// of the cell at pos.
func (e *ArcEnd) contractStart(pos hex.AxialVector) {
	e.contract(pos, TurnLeft)
}

// contractStop rotates the stop line clockwise past every corner of the
// cell at pos.
func (e *ArcEnd) contractStop(pos hex.AxialVector) {
	e.contract(pos, TurnRight)
}

func (e *ArcEnd) contract(pos hex.AxialVector, side Turn) {
	center := PlaneFromAxial(pos)
	for _, v := range hexPlaneVertices {
		corner := center.Add(v)
		if e.Vertex.Turns(corner) == side {
			e.Vertex = corner
		}
	}
}

// split cuts the arc at every obstacle of the ring of the given radius and
// appends the non-empty pieces to dst. Obstacles are looked up at absolute
// positions around center.
func (a Arc) split(dst []Arc, center hex.AxialVector, radius int, isObstacle func(hex.AxialVector) bool) []Arc {
	for a.Start.PolarIndex <= a.Stop.PolarIndex {
		pos := polarIndexToPosition(a.Start.PolarIndex, radius)
		if !isObstacle(center.Add(pos)) {
			break
		}
		a.Start.contractStart(pos)
		a.Start.PolarIndex++
	}

	for i := a.Start.PolarIndex; i <= a.Stop.PolarIndex; i++ {
		pos := polarIndexToPosition(i, radius)
		if !isObstacle(center.Add(pos)) {
			continue
		}
		head := a
		head.Stop.contractStop(pos)
		head.Stop.PolarIndex = i - 1
		if !head.isZeroAngle() {
			dst = append(dst, head)
		}
		a.Start.contractStart(pos)
		a.Start.PolarIndex = i + 1
	}

	if !a.isZeroAngle() {
		dst = append(dst, a)
	}
	return dst
}

// expand projects the arc from ring radius onto ring radius+1. Sight lines
// are kept; only the boundary indices move. The second result is false
// when no cell of the next ring lies between the two lines.
func (a Arc) expand(radius int) (Arc, bool) {
	next := radius + 1
	a.Start.PolarIndex = expandStart(a.Start, radius, next)
	a.Stop.PolarIndex = expandStop(a.Stop, radius, next)
	return a, a.Start.PolarIndex <= a.Stop.PolarIndex
}

// scaledIndex maps index i of ring radius to the matching index of ring
// next by scaling its offset along the side.
func scaledIndex(i, radius, next int) int {
	side, offset := i/radius, i%radius
	return side*next + offset*next/radius
}

// hasCorner reports whether some corner of cell i of the given ring lies
// strictly on the given side of line v.
func hasCorner(i, radius int, v PlaneVector, side Turn) bool {
	center := PlaneFromAxial(polarIndexToPosition(i, radius))
	for _, c := range hexPlaneVertices {
		if v.Turns(center.Add(c)) == side {
			return true
		}
	}
	return false
}

// expandStart returns the first index of ring next with a corner left of
// the start line. Returns 6·next+1 when there is none.
func expandStart(e ArcEnd, radius, next int) int {
	limit := hex.NumDirections * next
	visible := func(i int) bool { return hasCorner(i, next, e.Vertex, TurnLeft) }
	i := scaledIndex(e.PolarIndex, radius, next)
	if visible(i) {
		for i > 0 && visible(i-1) {
			i--
		}
		return i
	}
	for i <= limit && !visible(i) {
		i++
	}
	return i
}

// expandStop returns the last index of ring next with a corner right of
// the stop line. Returns -1 when there is none.
func expandStop(e ArcEnd, radius, next int) int {
	limit := hex.NumDirections * next
	visible := func(i int) bool { return hasCorner(i, next, e.Vertex, TurnRight) }
	i := scaledIndex(e.PolarIndex, radius, next)
	if visible(i) {
		for i < limit && visible(i+1) {
			i++
		}
		return i
	}
	for i >= 0 && !visible(i) {
		i--
	}
	return i
}
