package storage

import (
	"fmt"
	"iter"
	"math/bits"
)

const (
	// RectXLen is the width of a block along q.
	RectXLen = 8
	// RectYLen is the height of a block along r.
	RectYLen = 8

	rectSize = RectXLen * RectYLen
)

// Local is a position inside a block, both components in 0..7.
type Local struct {
	X, Y int
}

// Rect is a dense 8×8 block of optional values.
type Rect[H any] struct {
	mask  uint64
	hexes [rectSize]H
}

// NewRect returns an empty block.
func NewRect[H any]() *Rect[H] {
	return &Rect[H]{}
}

func rectOffset(x, y int) int {
	if x < 0 || x >= RectXLen || y < 0 || y >= RectYLen {
		panic(fmt.Sprintf("storage: local position (%d,%d) outside block [0,%d)x[0,%d)", x, y, RectXLen, RectYLen))
	}
	return x + y*RectXLen
}

// Get returns the value at (x, y) and whether the slot is occupied.
func (b *Rect[H]) Get(x, y int) (H, bool) {
	off := rectOffset(x, y)
	if b.mask&(1<<off) == 0 {
		var zero H
		return zero, false
	}
	return b.hexes[off], true
}

// GetMut returns a pointer to the value at (x, y), or nil if vacant.
func (b *Rect[H]) GetMut(x, y int) *H {
	off := rectOffset(x, y)
	if b.mask&(1<<off) == 0 {
		return nil
	}
	return &b.hexes[off]
}

// ContainsPosition reports whether (x, y) is occupied.
func (b *Rect[H]) ContainsPosition(x, y int) bool {
	return b.mask&(1<<rectOffset(x, y)) != 0
}

// Insert stores h at (x, y). It returns the previous value and true when the
// slot was already occupied.
func (b *Rect[H]) Insert(x, y int, h H) (old H, replaced bool) {
	off := rectOffset(x, y)
	if b.mask&(1<<off) != 0 {
		old, replaced = b.hexes[off], true
	}
	b.hexes[off] = h
	b.mask |= 1 << off
	return old, replaced
}

// Remove vacates (x, y) and returns the value it held.
func (b *Rect[H]) Remove(x, y int) (H, bool) {
	off := rectOffset(x, y)
	var zero H
	if b.mask&(1<<off) == 0 {
		return zero, false
	}
	h := b.hexes[off]
	b.hexes[off] = zero
	b.mask &^= 1 << off
	return h, true
}

// Clear vacates every slot and drops the values.
func (b *Rect[H]) Clear() {
	var zero H
	for m := b.mask; m != 0; m &= m - 1 {
		b.hexes[bits.TrailingZeros64(m)] = zero
	}
	b.mask = 0
}

// Len returns the number of occupied slots.
func (b *Rect[H]) Len() int {
	return bits.OnesCount64(b.mask)
}

// IsEmpty reports whether no slot is occupied.
func (b *Rect[H]) IsEmpty() bool {
	return b.mask == 0
}

// All yields occupied slots in row-major order (offset x + 8·y ascending).
// The set of visited slots is fixed when iteration starts.
func (b *Rect[H]) All() iter.Seq2[Local, *H] {
	return func(yield func(Local, *H) bool) {
		for m := b.mask; m != 0; m &= m - 1 {
			off := bits.TrailingZeros64(m)
			if !yield(Local{X: off % RectXLen, Y: off / RectXLen}, &b.hexes[off]) {
				return
			}
		}
	}
}

// Positions yields the local positions of occupied slots in row-major order.
func (b *Rect[H]) Positions() iter.Seq[Local] {
	return func(yield func(Local) bool) {
		for l := range b.All() {
			if !yield(l) {
				return
			}
		}
	}
}

// Hexes yields pointers to occupied values in row-major order.
func (b *Rect[H]) Hexes() iter.Seq[*H] {
	return func(yield func(*H) bool) {
		for _, h := range b.All() {
			if !yield(h) {
				return
			}
		}
	}
}
