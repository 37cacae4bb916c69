package largestarea

import (
	"slices"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// run is the last position seen on a row or column and the length of the
// run ending there.
type run struct {
	at, n int
}

// Accumulator feeds positions into an Iterator. Obtain one with
// Iterator.StartAccumulation.
type Accumulator struct {
	it        *Iterator
	positions []hex.AxialVector
	lastInQ   map[int]run
	lastInR   map[int]run
	ordered   bool
	done      bool
}

func newAccumulator(it *Iterator) *Accumulator {
	return &Accumulator{
		it:      it,
		lastInQ: make(map[int]run),
		lastInR: make(map[int]run),
		ordered: true,
	}
}

// Push adds pos. Positions pushed in strictly increasing (q, r) order are
// measured right away; anything else is deferred to Finish.
// Panics if the accumulation is already finished.
func (a *Accumulator) Push(pos hex.AxialVector) {
	if a.done {
		panic("largestarea: Push on a finished accumulation")
	}
	if n := len(a.positions); n > 0 && storage.ComparePositions(a.positions[n-1], pos) >= 0 {
		a.ordered = false
	}
	a.positions = append(a.positions, pos)
	if a.ordered {
		a.measure(pos)
	}
}

// Finish completes the accumulation. It is called automatically by the
// first NextLargestArea and is a no-op when called again.
func (a *Accumulator) Finish() {
	if a.done {
		return
	}
	a.done = true
	if !a.ordered {
		slices.SortFunc(a.positions, storage.ComparePositions)
		a.positions = slices.Compact(a.positions)
		a.it.cells.Clear()
		clear(a.lastInQ)
		clear(a.lastInR)
		for _, pos := range a.positions {
			a.measure(pos)
		}
	}
	a.positions, a.lastInQ, a.lastInR = nil, nil, nil
	if a.it.pending == a {
		a.it.pending = nil
	}
}

func (a *Accumulator) measure(pos hex.AxialVector) {
	c := cellData{h: 1, w: 1}
	if prev, ok := a.lastInR[pos.R()]; ok && prev.at+1 == pos.Q() {
		c.h = prev.n + 1
	}
	if prev, ok := a.lastInQ[pos.Q()]; ok && prev.at+1 == pos.R() {
		c.w = prev.n + 1
	}
	a.it.cells.Insert(pos, c)
	a.lastInR[pos.R()] = run{at: pos.Q(), n: c.h}
	a.lastInQ[pos.Q()] = run{at: pos.R(), n: c.w}
}
