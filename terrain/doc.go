// Package terrain generates deterministic obstacle maps for hexagonal
// grids from layered simplex noise.
//
// What:
//
//   - Generate fills the disk of a given radius around a center with Cells
//     stored in a storage.RectHash.
//   - Each cell gets an elevation in [0,1] from multi-octave opensimplex
//     noise, sampled at the cartesian position of the cell center
//     (x = q + r/2, y = r·√3/2), so a position keeps its elevation whatever
//     disk it is generated in.
//   - Cells at or above the threshold are opaque, except inside the
//     clearing kept around the center.
//
// Why:
//
//   - Field-of-view and reachability surveys need repeatable maps with
//     natural-looking clusters of obstacles rather than white noise.
//
// Options:
//
//   - WithSeed(s):        noise seed (default 1).
//   - WithFrequency(f):   base sampling frequency, > 0 (default 0.08).
//   - WithOctaves(n):     number of layers, ≥ 1 (default 4).
//   - WithPersistence(p): amplitude ratio between layers, in (0,1] (default 0.5).
//   - WithThreshold(t):   elevation from which a cell is opaque (default 0.6).
//   - WithClearing(r):    radius of the clear disk around the center, ≥ 0 (default 1).
//
// Errors:
//
//   - ErrBadRadius:       negative radius.
//   - ErrOptionViolation: an option out of range.
//
// Floating point only decides which cells are opaque. Everything downstream
// works on the integer lattice.
package terrain
