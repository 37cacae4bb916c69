// Package hexgrid treats the cells of a storage.RectHash as a land/water
// map, enabling component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - Grid wraps a RectHash with a caller-supplied land predicate.
//   - Identifies connected components ("islands") of land cells under
//     hexagonal six-neighbor adjacency.
//   - Computes minimal conversions (0-1 BFS) of water cells to connect two
//     islands.
//
// Why:
//
//   - Game maps: contiguous floor detection, cheapest corridor digging.
//   - Terrain checks: count the open regions a generated map falls into.
//
// Only stored positions take part. A position absent from the storage is
// neither land nor water and can never be converted.
//
// Determinism:
//
//	Components are discovered by scanning positions in (q, r) order and
//	flooded with package bfs in direction order, so indices and element
//	order are reproducible.
//
// Complexity:
//
//   - ConnectedComponents: O(n log n + 6n), Memory: O(n).
//   - ExpandIsland:        O(6n),            Memory: O(n).
//
// Errors:
//
//   - ErrEmptyGrid: the storage is nil or holds no position.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package hexgrid
