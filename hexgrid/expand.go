package hexgrid

import (
	"container/list"

	"github.com/arnodb/rhombus-sub000/hex"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each water-cell conversion costs 1.
// Returns the positions of the path (including the start and end land
// cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a land cell   → cost 0
//     • Moving into a water cell  → cost 1
//     • Unstored positions are never entered
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct path via predecessors map.
//
// Complexity: O(6n) time, O(n) memory for n stored positions.
func (g *Grid[H]) ExpandIsland(srcComp, dstComp int) (path []hex.AxialVector, cost int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[hex.AxialVector]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	dist := make(map[hex.AxialVector]int, g.cells.Len())
	prev := make(map[hex.AxialVector]hex.AxialVector, g.cells.Len())

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist[p] = 0
		dq.PushBack(p)
	}

	var target hex.AxialVector
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(hex.AxialVector)
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for dir := 0; dir < hex.NumDirections; dir++ {
			v := u.Neighbor(dir)
			if !g.cells.ContainsPosition(v) {
				continue
			}
			step := 0
			if g.IsWater(v) {
				step = 1
			}
			nd := dist[u] + step
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at, ok := target, true; ok; at, ok = prev[at] {
		path = append([]hex.AxialVector{at}, path...)
	}
	return path, dist[target], nil
}
