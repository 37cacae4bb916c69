package storage

import (
	"fmt"

	"github.com/arnodb/rhombus-sub000/hex"
)

// Entry is a handle on one position of a RectHash, obtained with
// RectHash.Entry. It is either occupied or vacant; the methods that only
// make sense in one state panic in the other.
//
// The block is resolved on every call, so an Entry stays accurate when the
// storage changes through another Entry or method.
type Entry[H any] struct {
	s    *RectHash[H]
	pos  hex.AxialVector
	key  blockKey
	x, y int
}

// Entry returns the entry for pos.
func (s *RectHash[H]) Entry(pos hex.AxialVector) Entry[H] {
	key, x, y := locate(pos)
	return Entry[H]{s: s, pos: pos, key: key, x: x, y: y}
}

func (e Entry[H]) block() *Rect[H] { return e.s.blocks[e.key] }

// Position returns the position the entry refers to.
func (e Entry[H]) Position() hex.AxialVector { return e.pos }

// Occupied reports whether a value is stored at the entry's position.
func (e Entry[H]) Occupied() bool {
	b := e.block()
	return b != nil && b.ContainsPosition(e.x, e.y)
}

// Get returns a pointer to the stored value. Panics on a vacant entry.
func (e Entry[H]) Get() *H {
	if !e.Occupied() {
		panic(fmt.Sprintf("storage: Get on vacant entry %v", e.pos))
	}
	return e.block().GetMut(e.x, e.y)
}

// Replace stores h and returns the previous value. Panics on a vacant entry.
func (e Entry[H]) Replace(h H) H {
	p := e.Get()
	old := *p
	*p = h
	return old
}

// Insert stores h in a vacant entry and returns a pointer to it. Panics on
// an occupied entry.
func (e Entry[H]) Insert(h H) *H {
	if e.Occupied() {
		panic(fmt.Sprintf("storage: Insert on occupied entry %v", e.pos))
	}
	b := e.block()
	if b == nil {
		b = NewRect[H]()
		e.s.blocks[e.key] = b
	}
	b.Insert(e.x, e.y, h)
	e.s.len++
	return b.GetMut(e.x, e.y)
}

// OrInsert returns the stored value, inserting h first if the entry is
// vacant.
func (e Entry[H]) OrInsert(h H) *H {
	if e.Occupied() {
		return e.Get()
	}
	return e.Insert(h)
}

// OrInsertWith is OrInsert with a lazily built default.
func (e Entry[H]) OrInsertWith(fn func() H) *H {
	if e.Occupied() {
		return e.Get()
	}
	return e.Insert(fn())
}

// AndModify calls fn on the stored value if the entry is occupied and
// returns the entry for chaining.
func (e Entry[H]) AndModify(fn func(*H)) Entry[H] {
	if e.Occupied() {
		fn(e.Get())
	}
	return e
}
