package fov_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnodb/rhombus-sub000/fov"
	"github.com/arnodb/rhombus-sub000/hex"
)

// Exact sightline geometry on the plane of fov.PlaneFromAxial. A cell is the
// hexagon of its center plus cellCorners; points and cells can be scaled by
// k to place sample points strictly inside a cell on an integer grid.

type point struct{ x, y int }

var cellCorners = [hex.NumDirections]point{
	{1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1}, {0, -2},
}

func scaledCenter(a hex.AxialVector, k int) point {
	p := fov.PlaneFromAxial(a)
	return point{p.X * k, p.Y * k}
}

func corners(c point, k int) [hex.NumDirections]point {
	var out [hex.NumDirections]point
	for i, v := range cellCorners {
		out[i] = point{c.x + k*v.x, c.y + k*v.y}
	}
	return out
}

func dot(a, b point) int { return a.x*b.x + a.y*b.y }

// segmentHitsCell runs a separating-axis test between segment p0-p1 and the
// cell centered on c. With open set, touching the boundary does not count.
func segmentHitsCell(p0, p1, c point, k int, open bool) bool {
	cs := corners(c, k)
	axes := make([]point, 0, hex.NumDirections+1)
	for i := range cs {
		a, b := cs[i], cs[(i+1)%len(cs)]
		axes = append(axes, point{a.y - b.y, b.x - a.x})
	}
	axes = append(axes, point{p0.y - p1.y, p1.x - p0.x})

	for _, axis := range axes {
		s0, s1 := dot(axis, p0), dot(axis, p1)
		sMin, sMax := min(s0, s1), max(s0, s1)
		hMin, hMax := dot(axis, cs[0]), dot(axis, cs[0])
		for _, q := range cs[1:] {
			hMin, hMax = min(hMin, dot(axis, q)), max(hMax, dot(axis, q))
		}
		if open && (sMax <= hMin || hMax <= sMin) {
			return false
		}
		if !open && (sMax < hMin || hMax < sMin) {
			return false
		}
	}
	return true
}

// strictlyInside reports whether p lies in the interior of the cell
// centered on c.
func strictlyInside(p, c point, k int) bool {
	cs := corners(c, k)
	for i := range cs {
		a, b := cs[i], cs[(i+1)%len(cs)]
		if (b.x-a.x)*(p.y-a.y)-(b.y-a.y)*(p.x-a.x) <= 0 {
			return false
		}
	}
	return true
}

// randomMaps yields obstacle sets over the disk of the given radius around
// center, with densities from sparse to crowded. The center stays clear.
func randomMaps(seed uint64, rounds int, center hex.AxialVector, radius int) [][]hex.AxialVector {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	densities := []float64{0.05, 0.1, 0.2, 0.35}
	maps := make([][]hex.AxialVector, rounds)
	for i := range maps {
		d := densities[rng.IntN(len(densities))]
		for _, p := range hex.Disk(center, radius) {
			if p != center && rng.Float64() < d {
				maps[i] = append(maps[i], p)
			}
		}
	}
	return maps
}

func nearerThan(obstacles []hex.AxialVector, center hex.AxialVector, d int) []hex.AxialVector {
	var out []hex.AxialVector
	for _, o := range obstacles {
		if o.Distance(center) < d {
			out = append(out, o)
		}
	}
	return out
}

// TestVisible_ClearSightlineIsVisible: a cell whose center can be joined to
// the viewer's center without touching any closer obstacle, boundaries
// included, is always visible.
func TestVisible_ClearSightlineIsVisible(t *testing.T) {
	const radius = 8
	center := ax(0, 0)
	from := scaledCenter(center, 1)
	for round, obstacles := range randomMaps(21, 120, center, radius) {
		got, err := fov.Visible(center, radius, blockedBy(obstacles...))
		require.NoError(t, err)
		visible := map[hex.AxialVector]bool{}
		for _, p := range got {
			visible[p] = true
		}

		for _, cell := range hex.Disk(center, radius) {
			d := cell.Distance(center)
			if d == 0 {
				continue
			}
			to := scaledCenter(cell, 1)
			unobstructed := true
			for _, o := range nearerThan(obstacles, center, d) {
				if segmentHitsCell(from, to, scaledCenter(o, 1), 1, false) {
					unobstructed = false
					break
				}
			}
			if unobstructed {
				require.True(t, visible[cell], "round %d: %v has a clear sightline, obstacles %v", round, cell, obstacles)
			}
		}
	}
}

// TestVisible_VisibleCellHasOpenSightline: every visible cell contains a
// point, on a 16x sample grid strictly inside it, reachable from the viewer's
// center without entering the interior of a closer obstacle.
func TestVisible_VisibleCellHasOpenSightline(t *testing.T) {
	const (
		radius = 8
		k      = 16
	)
	center := ax(0, 0)
	from := scaledCenter(center, k)
	for round, obstacles := range randomMaps(22, 80, center, radius) {
		got, err := fov.Visible(center, radius, blockedBy(obstacles...))
		require.NoError(t, err)

		for _, cell := range got {
			d := cell.Distance(center)
			if d == 0 {
				continue
			}
			near := nearerThan(obstacles, center, d)
			open := func(to point) bool {
				for _, o := range near {
					if segmentHitsCell(from, to, scaledCenter(o, k), k, true) {
						return false
					}
				}
				return true
			}

			c := scaledCenter(cell, k)
			found := open(c)
			for i := -k; i <= k && !found; i++ {
				for j := -2 * k; j <= 2*k && !found; j++ {
					p := point{c.x + i, c.y + j}
					found = strictlyInside(p, c, k) && open(p)
				}
			}
			require.True(t, found, "round %d: %v is visible but fully covered, obstacles %v", round, cell, obstacles)
		}
	}
}

func TestSegmentHitsCell(t *testing.T) {
	c := point{0, 0}
	// Through the middle.
	require.True(t, segmentHitsCell(point{-4, 0}, point{4, 0}, c, 1, true))
	// Along the right edge x = 1: touches only.
	require.True(t, segmentHitsCell(point{1, -4}, point{1, 4}, c, 1, false))
	require.False(t, segmentHitsCell(point{1, -4}, point{1, 4}, c, 1, true))
	// Through the top corner (0,2) only.
	require.True(t, segmentHitsCell(point{-2, 2}, point{2, 2}, c, 1, false))
	require.False(t, segmentHitsCell(point{-2, 2}, point{2, 2}, c, 1, true))
	// Clear of the cell.
	require.False(t, segmentHitsCell(point{2, -4}, point{2, 4}, c, 1, false))

	require.True(t, strictlyInside(point{0, 0}, c, 1))
	require.False(t, strictlyInside(point{1, 0}, c, 1))
}
