// Package bfs provides breadth-first search over the positions held in a
// storage.RectHash, returning step distances, parent links, and visit order.
//
// BFS explores positions in increasing distance from a start position,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   hex.AxialVector
	depth int
}

// walker encapsulates mutable BFS state.
type walker[H any] struct {
	cells   *storage.RectHash[H]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[hex.AxialVector]bool
	res     *BFSResult
}

// BFS runs breadth-first search over the positions stored in s, starting
// from start and stepping to the six lattice neighbors that are present in
// s. Any number of functional Options may be applied.
// Returns ErrStorageNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[H any](s *storage.RectHash[H], start hex.AxialVector, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrStorageNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start position
	if !s.ContainsPosition(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	// Prepare walker
	n := s.Len()
	w := &walker[H]{
		cells:   s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[hex.AxialVector]bool, n),
		res: &BFSResult{
			Order:  make([]hex.AxialVector, 0, n),
			Depth:  make(map[hex.AxialVector]int, n),
			Parent: make(map[hex.AxialVector]hex.AxialVector, n),
		},
	}

	// Seed queue with start position (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks pos visited at depth d, calls OnEnqueue, and adds it to
// the queue.
func (w *walker[H]) enqueue(pos hex.AxialVector, d int) {
	w.visited[pos] = true
	w.res.Depth[pos] = d
	w.opts.OnEnqueue(pos, d)
	w.queue = append(w.queue, queueItem{pos: pos, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[H]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[H]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)
	return item
}

// visit records the position in Order and calls OnVisit.
func (w *walker[H]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors resolves the neighborhood of item in one adjacency
// lookup, applies filtering and MaxDepth, and enqueues each unseen stored
// neighbor in direction order.
func (w *walker[H]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	adj := w.cells.HexWithAdjacents(item.pos)
	for dir := 0; dir < hex.NumDirections; dir++ {
		if adj.Adjacent(dir) == nil {
			continue
		}
		nbr := item.pos.Neighbor(dir)
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.pos
		w.enqueue(nbr, nextDepth)
	}
}
