package hexgrid

import (
	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// Grid is a read-only land/water view over a RectHash. The storage must not
// be mutated while the Grid is in use.
type Grid[H any] struct {
	cells  *storage.RectHash[H]
	isLand func(H) bool
}

// New wraps s. isLand classifies stored payloads.
// Returns ErrEmptyGrid if s is nil or empty. Panics if isLand is nil.
func New[H any](s *storage.RectHash[H], isLand func(H) bool) (*Grid[H], error) {
	if isLand == nil {
		panic("hexgrid: New requires a land predicate")
	}
	if s == nil || s.IsEmpty() {
		return nil, ErrEmptyGrid
	}
	return &Grid[H]{cells: s, isLand: isLand}, nil
}

// From2D builds a grid from rows of values: row i becomes r = i, column j
// becomes q = j. Values ≥ 1 are land.
// Returns ErrEmptyGrid if there is no value at all.
// Complexity: O(W×H).
func From2D(values [][]int) (*Grid[int], error) {
	s := storage.New[int]()
	for r, row := range values {
		for q, v := range row {
			s.Insert(hex.NewAxialVector(q, r), v)
		}
	}
	return New(s, func(v int) bool { return v >= 1 })
}

// Storage returns the wrapped storage.
func (g *Grid[H]) Storage() *storage.RectHash[H] { return g.cells }

// IsLand reports whether pos is stored and classified as land.
// Complexity: O(1).
func (g *Grid[H]) IsLand(pos hex.AxialVector) bool {
	h := g.cells.GetMut(pos)
	return h != nil && g.isLand(*h)
}

// IsWater reports whether pos is stored and not land.
// Complexity: O(1).
func (g *Grid[H]) IsWater(pos hex.AxialVector) bool {
	h := g.cells.GetMut(pos)
	return h != nil && !g.isLand(*h)
}
