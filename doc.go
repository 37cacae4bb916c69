// Package rhombus is exact hexagonal lattice geometry for games and
// simulations: coordinates, ring iteration, block storage, field of view
// and rectangle decomposition, plus the tooling built on top of them.
//
// 🚀 What is inside?
//
//	• Coordinates: axial and cubic hex vectors, quadric vectors on the
//	  dodecahedral sphere, with exact integer arithmetic
//	• Rings: ring, big-ring and sphere iterators in a fixed order
//	• Storage: sparse block-hashed planes with O(1) neighborhood access
//	• Field of view: incremental arc-based visibility, ring by ring
//	• Largest area: greedy rectangle decomposition of uniform regions
//	• Traversals: BFS, Dijkstra, connected components and island linking
//	• Terrain & survey: noise maps and parallel viewpoint statistics
//
// ✨ Why rhombus?
//
//   - Integer-only geometry - no floating point drift in visibility
//   - Deterministic - every iterator and every tie-break is ordered
//   - Generic storage - any payload type, with an entry API
//
// Layout:
//
//	hex/          - axial & cubic vectors, directions, rings, disks, ranges
//	dodec/        - quadric vectors and sphere iteration
//	storage/      - Rect blocks, RectHash plane, adjacency views, entries
//	fov/          - FieldOfView arcs and Visible
//	largestarea/  - Accumulator & Iterator over uniform rectangles
//	bfs/          - breadth-first search over stored positions
//	dijkstra/     - weighted routes over stored positions
//	hexgrid/      - land/water components and ExpandIsland
//	terrain/      - opensimplex terrain generation and travel costs
//	survey/       - concurrent viewpoint survey, summary, CSV
//	config/       - YAML configuration with embedded defaults
//	cmd/hexfov/   - command-line survey runner
//
// Quick ASCII example (radius 1 disk, viewer @ and one wall #):
//
//	   . .
//	  . @ #
//	   . .
//
//	go install github.com/arnodb/rhombus-sub000/cmd/hexfov@latest
package rhombus
