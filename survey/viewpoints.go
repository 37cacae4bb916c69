package survey

import (
	"fmt"
	"slices"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/hexgrid"
	"github.com/arnodb/rhombus-sub000/storage"
	"github.com/arnodb/rhombus-sub000/terrain"
)

// PickViewpoints returns up to n transparent positions spread evenly over
// the largest open region of s, in (q, r) order. The choice depends on the
// map only.
// Returns ErrOptionViolation if n < 1, ErrNoViewpoints if s has no open
// cell.
func PickViewpoints(s *storage.RectHash[terrain.Cell], n int) ([]hex.AxialVector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: viewpoint count must be at least 1 (%d)", ErrOptionViolation, n)
	}
	grid, err := hexgrid.New(s, func(c terrain.Cell) bool { return !c.Opaque })
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoViewpoints, err)
	}
	open := slices.Clone(grid.Largest())
	if len(open) == 0 {
		return nil, ErrNoViewpoints
	}
	slices.SortFunc(open, storage.ComparePositions)

	n = min(n, len(open))
	out := make([]hex.AxialVector, n)
	for i := range out {
		out[i] = open[i*len(open)/n]
	}
	return out, nil
}
