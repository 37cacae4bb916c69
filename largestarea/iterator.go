package largestarea

import (
	"iter"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/internal/assert"
	"github.com/arnodb/rhombus-sub000/storage"
)

// cellData holds the runs ending at a cell: h along q, w along r.
type cellData struct {
	h, w int
}

// Iterator extracts rectangles from the positions it tracks.
type Iterator struct {
	cells   *storage.RectHash[cellData]
	pending *Accumulator
}

// New returns an empty Iterator.
func New() *Iterator {
	return &Iterator{cells: storage.New[cellData]()}
}

// StartAccumulation drops every tracked cell and returns an Accumulator
// for the new input. A previous unfinished Accumulator is abandoned and
// panics on further pushes.
func (it *Iterator) StartAccumulation() *Accumulator {
	if it.pending != nil {
		it.pending.done = true
	}
	it.cells.Clear()
	it.pending = newAccumulator(it)
	return it.pending
}

// Initialize replaces the tracked cells with positions.
func (it *Iterator) Initialize(positions iter.Seq[hex.AxialVector]) {
	acc := it.StartAccumulation()
	for pos := range positions {
		acc.Push(pos)
	}
	acc.Finish()
}

// Len returns the number of cells not yet covered by a returned rectangle.
func (it *Iterator) Len() int {
	it.finish()
	return it.cells.Len()
}

func (it *Iterator) finish() {
	if it.pending != nil {
		it.pending.Finish()
	}
}

// NextLargestArea returns the largest rectangle of tracked cells and stops
// tracking them. ok is false once nothing is left.
// Complexity: O(n log n + Σ h) for n tracked cells.
func (it *Iterator) NextLargestArea() (area int, rect Rect, ok bool) {
	it.finish()
	for _, pos := range it.cells.SortedPositions() {
		c, _ := it.cells.Get(pos)
		minW := c.w
		if minW > area {
			area, rect, ok = minW, anchored(pos, 0, minW), true
		}
		for dh := 1; dh < c.h; dh++ {
			left, found := it.cells.Get(hex.NewAxialVector(pos.Q()-dh, pos.R()))
			assert.That(found, "height %d at %v runs past a hole", c.h, pos)
			minW = min(minW, left.w)
			if a := (dh + 1) * minW; a > area {
				area, rect, ok = a, anchored(pos, dh, minW), true
			}
		}
	}
	assert.That(ok || it.cells.IsEmpty(), "no rectangle found among %d cells", it.cells.Len())
	if ok {
		it.carve(rect)
	}
	return area, rect, ok
}

// anchored is the rectangle whose top right cell is pos.
func anchored(pos hex.AxialVector, dh, w int) Rect {
	return Rect{
		Q: hex.Range{Start: pos.Q() - dh, End: pos.Q()},
		R: hex.Range{Start: pos.R() - w + 1, End: pos.R()},
	}
}

// carve removes rect and renumbers the runs that used to pass through it:
// widths above it in each column, heights after it in each row.
func (it *Iterator) carve(rect Rect) {
	for q := rect.Q.Start; q <= rect.Q.End; q++ {
		for r := rect.R.Start; r <= rect.R.End; r++ {
			it.cells.Remove(hex.NewAxialVector(q, r))
		}
		for r, w := rect.R.End+1, 1; ; r, w = r+1, w+1 {
			c := it.cells.GetMut(hex.NewAxialVector(q, r))
			if c == nil {
				break
			}
			c.w = w
		}
	}
	for r := rect.R.Start; r <= rect.R.End; r++ {
		for q, h := rect.Q.End+1, 1; ; q, h = q+1, h+1 {
			c := it.cells.GetMut(hex.NewAxialVector(q, r))
			if c == nil {
				break
			}
			c.h = h
		}
	}
}

// All drains the iterator, yielding rectangles largest first.
func (it *Iterator) All() iter.Seq2[int, Rect] {
	return func(yield func(int, Rect) bool) {
		for {
			area, rect, ok := it.NextLargestArea()
			if !ok || !yield(area, rect) {
				return
			}
		}
	}
}
