// Package survey measures line of sight and walking reach from many
// viewpoints of one terrain map.
//
// What:
//
//   - Run computes, for every viewpoint, the positions visible within a
//     radius (package fov), the positions reachable on foot within as many
//     steps (package bfs), how many reachable positions stay out of sight,
//     and how many rectangles cover the visible area (package largestarea).
//   - Viewpoints are processed side by side by a bounded pool of workers.
//     Each worker only reads the shared storage; results come back in
//     viewpoint order whatever the scheduling.
//   - PickViewpoints spreads viewpoints over the largest open region
//     (package hexgrid).
//   - Summarize reduces results to mean, standard deviation and median.
//   - WriteCSV exports results, one row per viewpoint.
//
// Options:
//
//   - WithWorkers(n):   concurrent viewpoints, ≥ 1 (default GOMAXPROCS).
//   - WithMaxRadius(r): sight and walking radius, ≥ 0 (default 8).
//   - WithLogger(l):    structured logger (default discards).
//
// Errors:
//
//   - ErrNoViewpoints:    nothing to survey.
//   - ErrBadRadius:       negative radius.
//   - ErrOptionViolation: other invalid options.
//   - The first per-viewpoint failure, or the context error, cancels the
//     remaining work and is returned.
//
// The storage must not be mutated while Run is in progress.
package survey
