package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// Dijkstra computes minimum step costs from source to every stored position
// it can reach.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrStorageNil).
//  2. s must contain source (ErrSourceNotFound).
//
// A negative weight met during relaxation aborts with ErrNegativeWeight.
//
// Complexity: O(V log V) time, O(V) space.
func Dijkstra[H any](s *storage.RectHash[H], source hex.AxialVector, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if s == nil {
		return nil, ErrStorageNil
	}
	if !s.ContainsPosition(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	r := &runner[H]{
		s:       s,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[hex.AxialVector]int64),
		},
		best:    make(map[hex.AxialVector]int64),
		settled: make(map[hex.AxialVector]bool),
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[hex.AxialVector]hex.AxialVector)
		r.prev = make(map[hex.AxialVector]hex.AxialVector)
	}

	r.best[source] = 0
	heap.Push(&r.pq, nodeItem{pos: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[H any] struct {
	s       *storage.RectHash[H]
	options Options
	res     *Result
	best    map[hex.AxialVector]int64 // tentative distances
	prev    map[hex.AxialVector]hex.AxialVector // tentative predecessors
	settled map[hex.AxialVector]bool
	pq      nodePQ
}

// process pops the closest tentative position until the heap is empty or
// the closest one lies beyond MaxDistance.
func (r *runner[H]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.settled[item.pos] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.pos] = true
		r.res.Dist[item.pos] = item.dist
		if r.res.Prev != nil && item.pos != r.res.Source {
			r.res.Prev[item.pos] = r.prev[item.pos]
		}
		if err := r.relax(item.pos, item.dist); err != nil {
			return err
		}
	}
	return nil
}

// relax offers every stored neighbor of u a route through u.
func (r *runner[H]) relax(u hex.AxialVector, d int64) error {
	adj := r.s.HexWithAdjacents(u)
	for dir := 0; dir < hex.NumDirections; dir++ {
		if adj.Adjacent(dir) == nil {
			continue
		}
		v := u.Neighbor(dir)
		if r.settled[v] {
			continue
		}

		w := r.options.Weight(u, v)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Written as a subtraction so that d+w cannot overflow.
		if w > r.options.MaxDistance-d {
			continue
		}

		newDist := d + w
		if old, ok := r.best[v]; ok && newDist >= old {
			continue
		}
		r.best[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{pos: v, dist: newDist})
	}
	return nil
}

// nodeItem is a tentative distance pushed on the heap.
type nodeItem struct {
	pos  hex.AxialVector
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by position.
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return storage.ComparePositions(pq[i].pos, pq[j].pos) < 0
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
