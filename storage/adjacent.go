package storage

import (
	"fmt"
	"iter"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/internal/assert"
)

// maxAdjacentBlocks bounds the blocks spanned by a position and its
// neighbors: q and r each move by at most 1 and a block is 8 wide.
const maxAdjacentBlocks = 4

// Adjacents is a position of a RectHash with its 6 neighbors resolved.
// Every pointer refers to a distinct slot, so all of them may be written
// through at the same time.
type Adjacents[H any] struct {
	pos      hex.AxialVector
	hex      *H
	adjacent [hex.NumDirections]*H
	lookups  int
}

// Position returns the center position.
func (a Adjacents[H]) Position() hex.AxialVector { return a.pos }

// Hex returns the value at the center position, or nil if vacant.
func (a Adjacents[H]) Hex() *H { return a.hex }

// Adjacent returns the value of the neighbor in direction dir, or nil if
// that neighbor is vacant. Panics if dir is not in [0,6).
func (a Adjacents[H]) Adjacent(dir int) *H {
	if dir < 0 || dir >= hex.NumDirections {
		panic(fmt.Sprintf("storage: direction must be in [0,%d), got %d", hex.NumDirections, dir))
	}
	return a.adjacent[dir]
}

// BlockLookups returns how many distinct blocks were consulted to resolve
// the view.
func (a Adjacents[H]) BlockLookups() int { return a.lookups }

// HexWithAdjacents resolves pos and its 6 neighbors. Each position is
// resolved on its own from its block key; each distinct block is looked up
// in the hash once.
// Complexity: O(1).
func (s *RectHash[H]) HexWithAdjacents(pos hex.AxialVector) Adjacents[H] {
	var (
		keys   [maxAdjacentBlocks]blockKey
		blocks [maxAdjacentBlocks]*Rect[H]
		n      int
	)
	resolve := func(p hex.AxialVector) *H {
		key, x, y := locate(p)
		var b *Rect[H]
		found := false
		for i := 0; i < n; i++ {
			if keys[i] == key {
				b, found = blocks[i], true
				break
			}
		}
		if !found {
			assert.That(n < maxAdjacentBlocks, "storage: adjacency of %v spans more than %d blocks", pos, maxAdjacentBlocks)
			b = s.blocks[key]
			keys[n], blocks[n] = key, b
			n++
		}
		if b == nil {
			return nil
		}
		return b.GetMut(x, y)
	}

	a := Adjacents[H]{pos: pos, hex: resolve(pos)}
	for dir := 0; dir < hex.NumDirections; dir++ {
		a.adjacent[dir] = resolve(pos.Neighbor(dir))
	}
	a.lookups = n
	return a
}

// PositionsAndHexesWithAdjacents yields an adjacency view for every occupied
// position. Positions are collected before the first view is built, so the
// caller may write through the views while iterating.
func (s *RectHash[H]) PositionsAndHexesWithAdjacents() iter.Seq[Adjacents[H]] {
	return func(yield func(Adjacents[H]) bool) {
		positions := make([]hex.AxialVector, 0, s.len)
		for pos := range s.Positions() {
			positions = append(positions, pos)
		}
		for _, pos := range positions {
			if !yield(s.HexWithAdjacents(pos)) {
				return
			}
		}
	}
}
