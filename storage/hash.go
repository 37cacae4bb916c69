package storage

import (
	"cmp"
	"iter"
	"slices"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/internal/assert"
)

// blockKey identifies a block by the floor-divided position of its slots.
type blockKey struct {
	q, r int
}

// locate splits pos into its block key and local coordinates. Arithmetic
// shifts floor toward negative infinity and the mask is the Euclidean
// remainder, for negative coordinates too.
func locate(pos hex.AxialVector) (blockKey, int, int) {
	q, r := pos.Q(), pos.R()
	return blockKey{q: q >> 3, r: r >> 3}, q & (RectXLen - 1), r & (RectYLen - 1)
}

func (k blockKey) position(x, y int) hex.AxialVector {
	return hex.NewAxialVector(k.q*RectXLen+x, k.r*RectYLen+y)
}

// RectHash is a sparse hexagonal plane stored as a hash of 8×8 blocks.
// The zero value is not ready for use; call New.
type RectHash[H any] struct {
	blocks map[blockKey]*Rect[H]
	len    int
}

// New returns an empty storage.
func New[H any]() *RectHash[H] {
	return &RectHash[H]{blocks: make(map[blockKey]*Rect[H])}
}

// Get returns the value stored at pos and whether pos is occupied.
// Complexity: O(1) expected.
func (s *RectHash[H]) Get(pos hex.AxialVector) (H, bool) {
	key, x, y := locate(pos)
	if b, ok := s.blocks[key]; ok {
		return b.Get(x, y)
	}
	var zero H
	return zero, false
}

// GetMut returns a pointer to the value at pos, or nil when pos is vacant.
func (s *RectHash[H]) GetMut(pos hex.AxialVector) *H {
	key, x, y := locate(pos)
	if b, ok := s.blocks[key]; ok {
		return b.GetMut(x, y)
	}
	return nil
}

// ContainsPosition reports whether pos is occupied.
func (s *RectHash[H]) ContainsPosition(pos hex.AxialVector) bool {
	key, x, y := locate(pos)
	b, ok := s.blocks[key]
	return ok && b.ContainsPosition(x, y)
}

// Insert stores h at pos, creating the block on demand. It returns the
// previous value and true when pos was already occupied; the count only
// grows on first occupancy.
func (s *RectHash[H]) Insert(pos hex.AxialVector, h H) (old H, replaced bool) {
	key, x, y := locate(pos)
	b, ok := s.blocks[key]
	if !ok {
		b = NewRect[H]()
		s.blocks[key] = b
	}
	old, replaced = b.Insert(x, y, h)
	if !replaced {
		s.len++
	}
	return old, replaced
}

// Remove vacates pos and returns the value it held. Blocks left empty are
// kept for reuse.
func (s *RectHash[H]) Remove(pos hex.AxialVector) (H, bool) {
	key, x, y := locate(pos)
	b, ok := s.blocks[key]
	if !ok {
		var zero H
		return zero, false
	}
	h, removed := b.Remove(x, y)
	if removed {
		s.len--
		assert.That(s.len >= 0, "storage: negative length %d", s.len)
	}
	return h, removed
}

// Clear removes every value and every block.
func (s *RectHash[H]) Clear() {
	clear(s.blocks)
	s.len = 0
}

// Len returns the number of occupied positions.
func (s *RectHash[H]) Len() int { return s.len }

// IsEmpty reports whether no position is occupied.
func (s *RectHash[H]) IsEmpty() bool { return s.len == 0 }

// All yields every occupied position with a pointer to its value. Blocks are
// visited in unspecified order, slots of a block in row-major order.
// Values may be modified through the pointer; positions must not be inserted
// or removed during iteration.
func (s *RectHash[H]) All() iter.Seq2[hex.AxialVector, *H] {
	return func(yield func(hex.AxialVector, *H) bool) {
		for key, b := range s.blocks {
			for l, h := range b.All() {
				if !yield(key.position(l.X, l.Y), h) {
					return
				}
			}
		}
	}
}

// Positions yields every occupied position.
func (s *RectHash[H]) Positions() iter.Seq[hex.AxialVector] {
	return func(yield func(hex.AxialVector) bool) {
		for pos := range s.All() {
			if !yield(pos) {
				return
			}
		}
	}
}

// Hexes yields a pointer to every stored value.
func (s *RectHash[H]) Hexes() iter.Seq[*H] {
	return func(yield func(*H) bool) {
		for _, h := range s.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// SortedPositions returns every occupied position ordered by q, then r.
// Complexity: O(n log n).
func (s *RectHash[H]) SortedPositions() []hex.AxialVector {
	out := make([]hex.AxialVector, 0, s.len)
	for pos := range s.Positions() {
		out = append(out, pos)
	}
	slices.SortFunc(out, ComparePositions)
	return out
}

// ComparePositions orders positions by q, then r.
func ComparePositions(a, b hex.AxialVector) int {
	if c := cmp.Compare(a.Q(), b.Q()); c != 0 {
		return c
	}
	return cmp.Compare(a.R(), b.R())
}
