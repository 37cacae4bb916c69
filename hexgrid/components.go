package hexgrid

import (
	"github.com/arnodb/rhombus-sub000/bfs"
	"github.com/arnodb/rhombus-sub000/hex"
)

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells. Components are numbered in the (q, r) order of their first cell;
// each lists its positions in flood order from that cell.
//
// Time:   O(n log n + 6n) for n stored positions.
// Memory: O(n) for visited flags and output.
func (g *Grid[H]) ConnectedComponents() [][]hex.AxialVector {
	seen := make(map[hex.AxialVector]bool)
	landStep := bfs.WithFilterNeighbor(func(_, nbr hex.AxialVector) bool {
		return g.IsLand(nbr)
	})

	var comps [][]hex.AxialVector
	for _, pos := range g.cells.SortedPositions() {
		if seen[pos] || !g.IsLand(pos) {
			continue // water or already flooded
		}
		// the start is stored and no hook can fail
		res, _ := bfs.BFS(g.cells, pos, landStep)
		for _, p := range res.Order {
			seen[p] = true
		}
		comps = append(comps, res.Order)
	}
	return comps
}

// Largest returns the component with the most cells, the first one on
// ties, or nil if there is no land.
func (g *Grid[H]) Largest() []hex.AxialVector {
	var best []hex.AxialVector
	for _, c := range g.ConnectedComponents() {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
