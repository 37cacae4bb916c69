// Package storage keeps per-position values for a sparse, unbounded hexagonal
// plane in dense 8×8 blocks.
//
// What:
//
//   - Rect[H]: one block. 64 value slots addressed by local (x, y) in 0..7,
//     plus a uint64 occupancy mask (bit x + 8·y).
//   - RectHash[H]: a map from block coordinate to *Rect[H]. A position (q, r)
//     lives in block (⌊q/8⌋, ⌊r/8⌋) at local (q mod 8, r mod 8), using floor
//     division and the Euclidean remainder so negative coordinates work.
//   - Entry[H]: a handle on one position that is either occupied or vacant,
//     for insert-or-update without a second lookup.
//   - Adjacents[H]: a position and its 6 neighbors resolved at once. The 7
//     positions span at most 4 blocks and each block is looked up once.
//
// Why:
//
//	Game maps and visibility grids are clustered: most blocks are either
//	full or absent. A block keeps 64 values contiguous and answers
//	occupancy with a single bit test, so neighbor-heavy algorithms
//	(flood fill, field of view, largest rectangles) touch few map entries.
//
// Pointers:
//
//	GetMut, Entry and Adjacents hand out *H pointing into a block. A pointer
//	stays valid until its slot is removed or the storage is cleared.
//
// Concurrency:
//
//	Not safe for concurrent mutation. Any number of goroutines may read
//	(Get, ContainsPosition, iteration) while nothing writes.
//
// Complexity:
//
//   - Get / Insert / Remove / ContainsPosition: O(1) expected.
//   - HexWithAdjacents: O(1), at most 4 map lookups.
//   - Iteration: O(blocks + occupied).
//
// Errors:
//
//	Local coordinates outside 0..7, adjacency directions outside 0..5 and
//	misuse of an Entry in the wrong state panic.
package storage
