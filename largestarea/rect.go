package largestarea

import (
	"fmt"
	"iter"

	"github.com/arnodb/rhombus-sub000/hex"
)

// Rect is the set of positions with q in Q and r in R, both closed ranges.
type Rect struct {
	Q, R hex.Range
}

// Area returns the number of positions in the rectangle.
func (r Rect) Area() int {
	if r.Q.End < r.Q.Start || r.R.End < r.R.Start {
		return 0
	}
	return (r.Q.End - r.Q.Start + 1) * (r.R.End - r.R.Start + 1)
}

// Contains reports whether pos lies in the rectangle.
func (r Rect) Contains(pos hex.AxialVector) bool {
	return r.Q.Contains(pos.Q()) && r.R.Contains(pos.R())
}

// Positions yields the rectangle in (q, r) order.
func (r Rect) Positions() iter.Seq[hex.AxialVector] {
	return func(yield func(hex.AxialVector) bool) {
		for q := r.Q.Start; q <= r.Q.End; q++ {
			for rr := r.R.Start; rr <= r.R.End; rr++ {
				if !yield(hex.NewAxialVector(q, rr)) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("q[%d..%d] r[%d..%d]", r.Q.Start, r.Q.End, r.R.Start, r.R.End)
}
