package dodec

import "iter"

// ringDirections are the six in-layer directions, in walk order. Their t
// component is zero so a ring never leaves its layer.
var ringDirections = [6]int{0, 1, 2, 6, 7, 8}

// sphereRing walks one layer of a sphere: a hexagon whose sides alternate
// between edgeLengths[0] and edgeLengths[1].
type sphereRing struct {
	edgeLengths [2]int
	direction   int
	edgeIndex   int
	next        QuadricVector
}

func newSphereRing(edgeLengths [2]int, next QuadricVector) sphereRing {
	direction := 0
	// leave the last side for next() so a single-position ring yields once
	for direction < 5 && edgeLengths[direction&1] == 0 {
		direction++
	}
	return sphereRing{edgeLengths: edgeLengths, direction: direction, edgeIndex: 1, next: next}
}

func (r *sphereRing) peek() (QuadricVector, bool) {
	if r.direction < len(ringDirections) {
		return r.next, true
	}
	return QuadricVector{}, false
}

func (r *sphereRing) step() (QuadricVector, bool) {
	if r.direction >= len(ringDirections) {
		return QuadricVector{}, false
	}
	v := r.next
	// a single-position ring keeps its pending position in place so the
	// next layer is derived from the right origin
	if r.edgeLengths[r.direction&1] > 0 {
		r.next = v.Neighbor(ringDirections[r.direction])
	}
	if r.edgeIndex < r.edgeLengths[r.direction&1] {
		r.edgeIndex++
	} else {
		r.edgeIndex = 1
		r.direction++
		for r.direction < len(ringDirections) && r.edgeLengths[r.direction&1] == 0 {
			r.direction++
		}
	}
	return v, true
}

// SphereIter enumerates the positions at an exact distance from a center.
//
// Layers are visited from t = +radius down to t = -radius. Each layer is a
// sphereRing; when it is exhausted the next ring is derived from the current
// edge lengths and the ring's pending position.
type SphereIter struct {
	radius   int
	depth    int
	maxDepth int
	ring     sphereRing
}

func newSphereIter(radius int, center QuadricVector) *SphereIter {
	third := radius / 3
	start := center.
		Add(Direction(0).Add(Direction(1)).Scale(third)).
		Sub(Direction(3).Scale(radius))
	return &SphereIter{
		radius:   radius,
		depth:    0,
		maxDepth: 2*(radius+third) + 1,
		ring:     newSphereRing([2]int{radius % 3, 0}, start),
	}
}

// Peek returns the next position without consuming it.
func (s *SphereIter) Peek() (QuadricVector, bool) {
	return s.ring.peek()
}

// Next returns the next position of the sphere.
// Complexity: O(1).
func (s *SphereIter) Next() (QuadricVector, bool) {
	v, ok := s.ring.step()
	if !ok {
		return v, false
	}
	if _, more := s.ring.peek(); more {
		return v, true
	}
	depth := s.depth
	s.depth++
	if depth >= s.maxDepth {
		return v, true
	}
	el1, el2 := s.ring.edgeLengths[0], s.ring.edgeLengths[1]
	pending := s.ring.next
	switch {
	case depth < s.radius/3:
		s.ring = newSphereRing([2]int{el1 + 3, 0}, pending.Add(Direction(6)).Add(Direction(7)))
	case el1 == s.radius && el2 < s.radius:
		s.ring = newSphereRing([2]int{el1, el2 + 1}, pending.Add(Direction(5)))
	case el1 > 0:
		s.ring = newSphereRing([2]int{el1 - 1, el2}, pending.Add(Direction(3)))
	case el2 > s.radius%3:
		s.ring = newSphereRing([2]int{0, el2 - 3}, pending.Add(Direction(1)).Add(Direction(2)))
	}
	return v, true
}

// Len returns the total number of positions of the sphere:
// 4(1+r)(2+r) - 12, plus 6(r-1)² when r > 1, and 1 for r == 0.
func (s *SphereIter) Len() int {
	r := s.radius
	if r == 0 {
		return 1
	}
	n := 4*(1+r)*(2+r) - 12
	if r > 1 {
		n += 6 * (r - 1) * (r - 1)
	}
	return n
}

// All consumes the iterator as a range-over-func sequence.
func (s *SphereIter) All() iter.Seq[QuadricVector] {
	return func(yield func(QuadricVector) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
