// Package fov computes hexagonal field of view one radius at a time.
//
// What:
//
//   - FieldOfView keeps a center, a current radius r and an ordered list of
//     visible Arcs on the ring of radius r.
//   - Start resets the engine to radius 1 with two arcs covering the whole
//     ring. NextRadius cuts every arc at the obstacles found on the current
//     ring, narrows the sight lines around them and projects the surviving
//     arcs onto ring r+1.
//   - Offsets lists the visible cells of the current ring relative to the
//     center. Visible runs the whole sweep and returns an absolute set.
//
// Polar index:
//
//	A cell of ring r is addressed by an index i in [0, 6r]. Side s = i/r
//	(mod 6) and offset o = i%r give the position
//
//	    direction(s)·r + direction(s+2)·o
//
//	Index 6r addresses the same cell as index 0, so an arc may end there.
//
// Plane geometry:
//
//	Every cell center maps to an integer point of a scaled plane,
//	(x, y) = (2q + r, -3r). The six corners of a cell are its center plus
//	(1,-1), (1,1), (0,2), (-1,1), (-1,-1), (0,-2). An arc end carries a sight
//	line from the center through one such corner; the arc spans the cells
//	between its start line and its stop line, counter-clockwise.
//
// Determinism:
//
//	Only integer cross products are involved. Two runs over the same
//	obstacle predicate produce identical arcs.
//
// Complexity:
//
//   - NextRadius: O(r) predicate calls and O(r) arithmetic per radius.
//   - Visible up to radius R: O(R²) time, O(R²) memory for the result.
//
// Errors:
//
//   - ErrBadRadius when Visible is called with a negative radius.
//
// Calling NextRadius before Start is a programming error and panics.
package fov
