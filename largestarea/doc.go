// Package largestarea greedily decomposes a set of lattice positions into
// axis-aligned rectangles, largest first.
//
// What:
//
//   - An Accumulator receives positions, ideally in (q, r) order, and
//     records for each one its height (run of occupied cells ending at it
//     along q, same r) and width (run ending at it along r, same q).
//   - Iterator.NextLargestArea finds the rectangle of largest area anchored
//     at any tracked cell, removes its cells and repairs the runs of the
//     cells it used to touch. Repeated calls partition the input.
//
// A "rectangle" here is a parallelogram of the hex lattice: a closed q range
// times a closed r range. Renderers use the partition to draw large uniform
// regions (walls, floors) with few primitives.
//
// Algorithm:
//
//	The same histogram technique as the maximal rectangle of a binary
//	matrix. For each anchor cell the height is walked back one column at a
//	time while the usable width shrinks to the minimum seen so far.
//
// Determinism:
//
//	Cells are scanned in (q, r) order and only a strictly larger area
//	replaces the current best, so ties go to the first anchor.
//
// Complexity:
//
//   - Accumulation: O(1) per in-order push; O(n log n) once if any push
//     arrived out of order.
//   - NextLargestArea: O(n log n + Σ h) for n tracked cells.
package largestarea
