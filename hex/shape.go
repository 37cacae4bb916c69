package hex

import (
	"fmt"
	"iter"
)

// Range is a closed interval [Start, End] of one cubic axis.
type Range struct {
	Start, End int
}

// Contains reports whether Start <= v <= End.
func (r Range) Contains(v int) bool {
	return r.Start <= v && v <= r.End
}

// CubicRangeShape is the set of positions whose cubic x, y and z components
// each lie within a closed range. Such a set is a (possibly irregular)
// hexagon with edges parallel to the lattice directions.
type CubicRangeShape struct {
	x, y, z Range
}

// NewCubicRangeShape builds the shape bounded by rx, ry and rz.
// Panics if the ranges do not describe a valid hexagon (see AreRangesValid).
func NewCubicRangeShape(rx, ry, rz Range) CubicRangeShape {
	if !AreRangesValid(rx, ry, rz) {
		panic(fmt.Sprintf("hex: invalid cubic range shape [%d,%d] [%d,%d] [%d,%d]",
			rx.Start, rx.End, ry.Start, ry.End, rz.Start, rz.End))
	}
	return CubicRangeShape{x: rx, y: ry, z: rz}
}

// DefaultCubicRangeShape returns the radius-1 hexagon around the origin.
func DefaultCubicRangeShape() CubicRangeShape {
	return NewCubicRangeShape(Range{-1, 1}, Range{-1, 1}, Range{-1, 1})
}

// AreRangesValid reports whether every edge of the hexagon bounded by the
// three ranges has a non-negative length.
func AreRangesValid(rx, ry, rz Range) bool {
	for _, l := range signedEdgeLengths(rx, ry, rz) {
		if l < 0 {
			return false
		}
	}
	return true
}

// signedEdgeLengths returns the lengths of the 6 edges, in direction order,
// starting from vertex 0.
func signedEdgeLengths(rx, ry, rz Range) [NumDirections]int {
	return [NumDirections]int{
		-rx.Start - ry.Start - rz.End,
		rx.End + ry.Start + rz.End,
		-rx.End - ry.Start - rz.Start,
		rx.End + ry.End + rz.Start,
		-rx.Start - ry.End - rz.Start,
		rx.Start + ry.End + rz.End,
	}
}

// RangeX returns the x range.
func (s CubicRangeShape) RangeX() Range { return s.x }

// RangeY returns the y range.
func (s CubicRangeShape) RangeY() Range { return s.y }

// RangeZ returns the z range.
func (s CubicRangeShape) RangeZ() Range { return s.z }

// EdgeLengths returns the length of each edge in direction order.
func (s CubicRangeShape) EdgeLengths() [NumDirections]int {
	return signedEdgeLengths(s.x, s.y, s.z)
}

// Vertices returns the six corners of the shape. Vertex k is where the edge
// walked along direction k starts.
func (s CubicRangeShape) Vertices() [NumDirections]AxialVector {
	return [NumDirections]AxialVector{
		NewCubicVector(s.x.Start, -s.x.Start-s.z.End, s.z.End).Axial(),
		NewCubicVector(-s.y.Start-s.z.End, s.y.Start, s.z.End).Axial(),
		NewCubicVector(s.x.End, s.y.Start, -s.x.End-s.y.Start).Axial(),
		NewCubicVector(s.x.End, -s.x.End-s.z.Start, s.z.Start).Axial(),
		NewCubicVector(-s.y.End-s.z.Start, s.y.End, s.z.Start).Axial(),
		NewCubicVector(s.x.Start, s.y.End, -s.x.Start-s.y.End).Axial(),
	}
}

// Perimeter returns a lazy walk over the boundary of the shape, starting at
// vertex 0 and following the edges in direction order.
func (s CubicRangeShape) Perimeter() *PerimeterIter {
	return newPerimeterIter(s.EdgeLengths(), s.Vertices()[0])
}

// ContainsPosition reports whether p lies inside the shape (boundary
// included).
func (s CubicRangeShape) ContainsPosition(p AxialVector) bool {
	c := p.Cubic()
	return s.x.Contains(c.x) && s.y.Contains(c.y) && s.z.Contains(c.z)
}

// Intersects reports whether s and o share at least one position.
// Complexity: O(perimeter of s).
func (s CubicRangeShape) Intersects(o CubicRangeShape) bool {
	if s.ContainsPosition(o.Vertices()[0]) {
		return true
	}
	for p := range s.Perimeter().All() {
		if o.ContainsPosition(p) {
			return true
		}
	}
	return false
}

// Center returns the lattice position closest to the geometric center,
// rounding toward zero.
func (s CubicRangeShape) Center() AxialVector {
	return NewAxialVector(
		(s.x.Start+s.x.End-(s.y.Start+s.y.End+s.z.Start+s.z.End)/2)/3,
		(s.z.Start+s.z.End-(s.x.Start+s.x.End+s.y.Start+s.y.End)/2)/3,
	)
}

// StretchXStart moves the start of the x range by -amount, widening the
// other two axes when the shape would otherwise lose an edge.
func (s *CubicRangeShape) StretchXStart(amount int) bool {
	return stretchAxisStart(&s.x, &s.y, &s.z, amount)
}

// StretchYStart is StretchXStart on the y axis.
func (s *CubicRangeShape) StretchYStart(amount int) bool {
	return stretchAxisStart(&s.y, &s.z, &s.x, amount)
}

// StretchZStart is StretchXStart on the z axis.
func (s *CubicRangeShape) StretchZStart(amount int) bool {
	return stretchAxisStart(&s.z, &s.x, &s.y, amount)
}

// StretchXEnd moves the end of the x range by +amount.
func (s *CubicRangeShape) StretchXEnd(amount int) bool {
	return stretchAxisEnd(&s.x, &s.y, &s.z, amount)
}

// StretchYEnd is StretchXEnd on the y axis.
func (s *CubicRangeShape) StretchYEnd(amount int) bool {
	return stretchAxisEnd(&s.y, &s.z, &s.x, amount)
}

// StretchZEnd is StretchXEnd on the z axis.
func (s *CubicRangeShape) StretchZEnd(amount int) bool {
	return stretchAxisEnd(&s.z, &s.x, &s.y, amount)
}

// ShrinkXStart moves the start of the x range by +amount. It returns false
// and leaves the shape untouched if the x range would become empty.
func (s *CubicRangeShape) ShrinkXStart(amount int) bool {
	return shrinkAxisStart(&s.x, &s.y, &s.z, amount)
}

// ShrinkYStart is ShrinkXStart on the y axis.
func (s *CubicRangeShape) ShrinkYStart(amount int) bool {
	return shrinkAxisStart(&s.y, &s.z, &s.x, amount)
}

// ShrinkZStart is ShrinkXStart on the z axis.
func (s *CubicRangeShape) ShrinkZStart(amount int) bool {
	return shrinkAxisStart(&s.z, &s.x, &s.y, amount)
}

// ShrinkXEnd moves the end of the x range by -amount, with the same
// emptiness rule as ShrinkXStart.
func (s *CubicRangeShape) ShrinkXEnd(amount int) bool {
	return shrinkAxisEnd(&s.x, &s.y, &s.z, amount)
}

// ShrinkYEnd is ShrinkXEnd on the y axis.
func (s *CubicRangeShape) ShrinkYEnd(amount int) bool {
	return shrinkAxisEnd(&s.y, &s.z, &s.x, amount)
}

// ShrinkZEnd is ShrinkXEnd on the z axis.
func (s *CubicRangeShape) ShrinkZEnd(amount int) bool {
	return shrinkAxisEnd(&s.z, &s.x, &s.y, amount)
}

func stretchAxisStart(a, b, c *Range, amount int) bool {
	checkRadius("amount", amount)
	a.Start -= amount
	if a.Start+b.End+c.End < 0 {
		b.End += amount
		c.End += amount
	}
	return true
}

func stretchAxisEnd(a, b, c *Range, amount int) bool {
	checkRadius("amount", amount)
	a.End += amount
	if -a.End-b.Start-c.Start < 0 {
		b.Start -= amount
		c.Start -= amount
	}
	return true
}

func shrinkAxisStart(a, b, c *Range, amount int) bool {
	checkRadius("amount", amount)
	if a.Start+amount > a.End {
		return false
	}
	a.Start += amount
	if -a.Start-b.End-c.Start < 0 {
		b.End -= amount
	}
	if -a.Start-b.Start-c.End < 0 {
		c.End -= amount
	}
	return true
}

func shrinkAxisEnd(a, b, c *Range, amount int) bool {
	checkRadius("amount", amount)
	if a.Start+amount > a.End {
		return false
	}
	a.End -= amount
	if a.End+b.Start+c.End < 0 {
		b.Start += amount
	}
	if a.End+b.End+c.Start < 0 {
		c.Start += amount
	}
	return true
}

// PerimeterIter walks the boundary of a CubicRangeShape. A degenerate shape
// reduced to a single position yields that position once.
type PerimeterIter struct {
	edgeLengths [NumDirections]int
	direction   int
	edgeIndex   int
	next        AxialVector
}

func newPerimeterIter(edgeLengths [NumDirections]int, initial AxialVector) *PerimeterIter {
	direction := 0
	// leave the last side for Next so a single-position shape yields once
	for direction < NumDirections-1 && edgeLengths[direction] == 0 {
		direction++
	}
	return &PerimeterIter{
		edgeLengths: edgeLengths,
		direction:   direction,
		edgeIndex:   1,
		next:        initial,
	}
}

// Peek returns the next position without consuming it.
func (it *PerimeterIter) Peek() (AxialVector, bool) {
	if it.direction < NumDirections {
		return it.next, true
	}
	return AxialVector{}, false
}

// Next returns the next boundary position.
func (it *PerimeterIter) Next() (AxialVector, bool) {
	if it.direction >= NumDirections {
		return AxialVector{}, false
	}
	v := it.next
	it.next = v.Neighbor(it.direction)
	if it.edgeIndex < it.edgeLengths[it.direction] {
		it.edgeIndex++
	} else {
		it.edgeIndex = 1
		it.direction++
		for it.direction < NumDirections && it.edgeLengths[it.direction] == 0 {
			it.direction++
		}
	}
	return v, true
}

// Len returns the number of boundary positions: the sum of the edge
// lengths, or 1 for a single-position shape.
func (it *PerimeterIter) Len() int {
	n := 0
	for _, l := range it.edgeLengths {
		n += l
	}
	if n == 0 {
		return 1
	}
	return n
}

// All consumes the iterator as a range-over-func sequence.
func (it *PerimeterIter) All() iter.Seq[AxialVector] {
	return func(yield func(AxialVector) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
