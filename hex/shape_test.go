package hex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnodb/rhombus-sub000/hex"
)

func collectPerimeter(s hex.CubicRangeShape) []hex.AxialVector {
	var out []hex.AxialVector
	for p := range s.Perimeter().All() {
		out = append(out, p)
	}
	return out
}

func TestCubicRangeShape_DefaultIsRingOne(t *testing.T) {
	s := hex.DefaultCubicRangeShape()
	var ring []hex.AxialVector
	for v := range ax(0, 0).Ring(1).All() {
		ring = append(ring, v)
	}

	assert.Equal(t, [6]int{1, 1, 1, 1, 1, 1}, s.EdgeLengths())
	vertices := s.Vertices()
	assert.Equal(t, ring, vertices[:])
	assert.Equal(t, ring, collectPerimeter(s))
	assert.Equal(t, 6, s.Perimeter().Len())
	assert.Equal(t, ax(0, 0), s.Center())
}

func TestCubicRangeShape_RadiusTwoPerimeter(t *testing.T) {
	s := hex.NewCubicRangeShape(hex.Range{Start: -2, End: 2}, hex.Range{Start: -2, End: 2}, hex.Range{Start: -2, End: 2})
	var ring []hex.AxialVector
	for v := range ax(0, 0).Ring(2).All() {
		ring = append(ring, v)
	}
	assert.Equal(t, ring, collectPerimeter(s))
}

func TestCubicRangeShape_SinglePosition(t *testing.T) {
	s := hex.NewCubicRangeShape(hex.Range{Start: 1, End: 1}, hex.Range{Start: -3, End: -3}, hex.Range{Start: 2, End: 2})
	assert.Equal(t, []hex.AxialVector{ax(1, 2)}, collectPerimeter(s))
	assert.Equal(t, 1, s.Perimeter().Len())
	assert.True(t, s.ContainsPosition(ax(1, 2)))
	assert.False(t, s.ContainsPosition(ax(1, 1)))
}

func TestCubicRangeShape_InvalidPanics(t *testing.T) {
	assert.False(t, hex.AreRangesValid(hex.Range{Start: 2, End: 3}, hex.Range{Start: 2, End: 3}, hex.Range{Start: 2, End: 3}))
	assert.Panics(t, func() {
		hex.NewCubicRangeShape(hex.Range{Start: 2, End: 3}, hex.Range{Start: 2, End: 3}, hex.Range{Start: 2, End: 3})
	})
}

func TestCubicRangeShape_ContainsMatchesPerimeter(t *testing.T) {
	s := hex.NewCubicRangeShape(hex.Range{Start: -3, End: 2}, hex.Range{Start: -1, End: 4}, hex.Range{Start: -4, End: 1})
	for _, p := range collectPerimeter(s) {
		require.True(t, s.ContainsPosition(p), "perimeter position %v outside shape", p)
	}
	assert.True(t, s.ContainsPosition(s.Center()))
}

func TestCubicRangeShape_Intersects(t *testing.T) {
	a := hex.DefaultCubicRangeShape()
	near := hex.NewCubicRangeShape(hex.Range{Start: 1, End: 3}, hex.Range{Start: -2, End: 0}, hex.Range{Start: -2, End: 0})
	far := hex.NewCubicRangeShape(hex.Range{Start: 3, End: 5}, hex.Range{Start: -3, End: -1}, hex.Range{Start: -3, End: -1})

	assert.Equal(t, ax(2, -1), near.Center())
	assert.True(t, a.Intersects(near))
	assert.True(t, near.Intersects(a))
	assert.False(t, a.Intersects(far))
	assert.False(t, far.Intersects(a))
	assert.True(t, a.Intersects(a))
}

func TestCubicRangeShape_StretchShrink(t *testing.T) {
	s := hex.DefaultCubicRangeShape()

	require.True(t, s.ShrinkXStart(1))
	assert.Equal(t, hex.Range{Start: 0, End: 1}, s.RangeX())
	assert.Equal(t, hex.Range{Start: -1, End: 1}, s.RangeY())
	assert.Equal(t, hex.Range{Start: -1, End: 1}, s.RangeZ())
	assert.True(t, hex.AreRangesValid(s.RangeX(), s.RangeY(), s.RangeZ()))

	before := s
	assert.False(t, s.ShrinkXEnd(2))
	assert.Equal(t, before, s)

	s = hex.DefaultCubicRangeShape()
	require.True(t, s.StretchXStart(1))
	assert.Equal(t, hex.Range{Start: -2, End: 1}, s.RangeX())
	assert.True(t, hex.AreRangesValid(s.RangeX(), s.RangeY(), s.RangeZ()))

	for i := 0; i < 3; i++ {
		s.StretchYEnd(2)
		s.StretchZStart(1)
		require.True(t, hex.AreRangesValid(s.RangeX(), s.RangeY(), s.RangeZ()))
	}
	for s.ShrinkZEnd(1) {
		require.True(t, hex.AreRangesValid(s.RangeX(), s.RangeY(), s.RangeZ()))
	}
}
