// Package dijkstra computes minimum-cost routes over a hexagonal lattice
// stored in a storage.RectHash, with non-negative per-step weights.
//
// What:
//
//   - Dijkstra expands stored positions from a source in order of increasing
//     accumulated cost, stepping through the six hex adjacencies.
//   - Step costs come from a WeightFunc(from, to); the default charges 1 per
//     step, which reproduces BFS depths.
//   - Result.Dist holds the cost of every reached position; Result.PathTo
//     rebuilds a route when WithReturnPath is set.
//
// Why:
//
//   - Terrain is rarely uniform: climbing costs more than walking downhill,
//     walls cannot be crossed at all. The terrain package supplies such a
//     WeightFunc (terrain.TravelCost).
//
// Options:
//
//   - WithWeight(fn):            step cost; panics on nil.
//   - WithReturnPath():          keep predecessors for PathTo.
//   - WithMaxDistance(d):        do not settle positions farther than d.
//   - WithInfEdgeThreshold(t):   steps with weight ≥ t are impassable.
//
// Complexity:
//
//   - Time:  O(V log V), V = reached positions (six steps each, lazy
//     decrease-key heap).
//   - Space: O(V).
//
// Errors:
//
//   - ErrStorageNil      storage pointer is nil.
//   - ErrSourceNotFound  source position is not stored.
//   - ErrNegativeWeight  the weight function returned a negative cost.
//   - ErrNoPath          PathTo target was never reached.
//   - ErrPathNotRecorded PathTo called without WithReturnPath.
//
// Determinism: equal-cost heap entries are ordered by storage.ComparePositions
// and neighbors are relaxed in direction order, so predecessors are stable.
package dijkstra
