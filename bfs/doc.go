// Package bfs provides a breadth-first flood over the positions stored in a
// storage.RectHash, returning step distances, parent links, and visit order.
//
// What
//
//   - Explore stored positions in non-decreasing lattice distance (steps
//     through stored cells) from a start position.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from position → steps from start
//   - Parent: map from position → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a position is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of individual steps via WithFilterNeighbor, typically to
//     keep the flood on walkable cells.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability and walking distance on a hex map, next to the line of
//     sight computed by package fov.
//   - Foundation for the component and bridging analyses of package hexgrid.
//
// Determinism
//
//	Neighbors are resolved with RectHash.HexWithAdjacents and enqueued in
//	direction order 0..5, so the visit sequence is fully reproducible.
//
// Complexity (V = stored positions reached)
//
//   - Time:   O(V)   (each position is enqueued once, six neighbor checks each)
//   - Memory: O(V)   (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(cells, hex.NewAxialVector(0, 0))
//		if err != nil {
//	      // handle one of:
//	      // ErrStorageNil, ErrStartNotFound, ErrOptionViolation, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    cells, start,
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr hex.AxialVector) bool { return walkable(nbr) }),
//		    bfs.WithOnVisit(func(p hex.AxialVector, depth int) error { /* ... */ return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip steps for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a position is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a position.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrStorageNil       if the storage pointer is nil.
//   - ErrStartNotFound    if the start position is not stored.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath           from BFSResult.PathTo for unreached positions.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
