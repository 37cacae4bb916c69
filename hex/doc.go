// Package hex provides exact integer coordinates for hexagonal lattices and
// the radial enumerations built on top of them.
//
// What:
//
//   - AxialVector {q, r} and CubicVector {x, y, z} (x+y+z == 0), convertible
//     into each other without loss (x=q, z=r, y=-q-r).
//   - A fixed table of 6 unit directions per system, indexed 0..5, where
//     direction i and direction i+3 are additive inverses.
//   - Hexagonal distance, neighbors, vector addition and integer scaling.
//   - RingIter: the positions at exact distance r from a center.
//   - BigRingIter: the same walk over a lattice of "big cells" of radius c.
//   - CubicRangeShape: the convex hexagon bounded by three cubic ranges,
//     with its vertices and a lazy perimeter walk.
//
// Why:
//
//   - Everything stays on the integer lattice, so two computations of the
//     same ring or shape always produce identical positions.
//   - Rings are the unit of work for the field-of-view engine (package fov)
//     and for terrain generation (package terrain).
//
// Ring order:
//
//	Start at center + direction(4)·r, then walk side k along direction k,
//	k = 0..5, r steps per side. Radius 0 yields exactly the center.
//
//	           (0,-1) (1,-1)
//	       (-1,0)  (0,0)  (1,0)
//	           (-1,1) (0,1)
//
//	Ring 1 around (0,0): (-1,1) (0,1) (1,0) (1,-1) (0,-1) (-1,0)
//
// Complexity:
//
//   - Vector operations: O(1).
//   - RingIter / BigRingIter: O(1) per step, 6r steps (1 for r == 0).
//   - CubicRangeShape.Perimeter: O(1) per step.
//
// Errors:
//
//   - Constructing a CubicVector whose components do not sum to zero panics.
//   - Direction indices outside 0..5 panic.
//   - Negative radii panic.
//   - Invalid cubic ranges passed to NewCubicRangeShape panic.
//
// These are programmer errors; no function in this package returns an error.
package hex
