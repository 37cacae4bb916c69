// Package dodec provides 4-component "quadric" coordinates for the
// rhombic-dodecahedral lattice and the enumeration of its spheres.
//
// A QuadricVector {x, y, z, t} always satisfies x+y+z+t == 0. Every position
// has 12 neighbors, indexed 0..11; direction i and direction i+6 are
// opposite. Distance is half the sum of the absolute component differences.
//
// SphereIter enumerates every position at exact distance r from a center,
// layer by layer along the t axis, each layer walked as a ring over the
// directions 0, 1, 2, 6, 7 and 8. The order is fixed and reproducible.
//
// Complexity:
//
//   - Vector operations: O(1).
//   - SphereIter: O(1) per step, Len() positions in total.
//
// Errors:
//
//	Invalid components, out-of-range directions and negative radii panic.
package dodec
