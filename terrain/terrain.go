package terrain

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/storage"
)

// Generate fills every position within radius of center.
// Returns ErrBadRadius or ErrOptionViolation for invalid input.
// Complexity: O(radius² · octaves).
func Generate(center hex.AxialVector, radius int, opts ...Option) (*storage.RectHash[Cell], error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	noise := opensimplex.NewNormalized(o.Seed)
	s := storage.New[Cell]()
	for _, pos := range hex.Disk(center, radius) {
		elev := Elevation(noise, pos, o)
		s.Insert(pos, Cell{
			Elevation: elev,
			Opaque:    elev >= o.Threshold && pos.Distance(center) > o.Clearing,
		})
	}
	return s, nil
}

// Elevation samples the layered noise at the center of pos.
func Elevation(noise opensimplex.Noise, pos hex.AxialVector, o Options) float64 {
	// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
	x := float64(pos.Q()) + float64(pos.R())*0.5
	y := float64(pos.R()) * math.Sqrt(3.0) / 2.0
	return octaveNoise(noise, x, y, o.Octaves, o.Frequency, o.Persistence)
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Obstacles returns the predicate fov expects: opaque cells and positions
// outside the generated map block the view.
func Obstacles(s *storage.RectHash[Cell]) func(hex.AxialVector) bool {
	return func(pos hex.AxialVector) bool {
		c := s.GetMut(pos)
		return c == nil || c.Opaque
	}
}

// Walkable reports whether a step may end on pos.
func Walkable(s *storage.RectHash[Cell]) func(curr, next hex.AxialVector) bool {
	return func(_, next hex.AxialVector) bool {
		c := s.GetMut(next)
		return c != nil && !c.Opaque
	}
}

// OpaqueCount returns how many stored cells are opaque.
func OpaqueCount(s *storage.RectHash[Cell]) int {
	n := 0
	for c := range s.Hexes() {
		if c.Opaque {
			n++
		}
	}
	return n
}

// Impassable is the step cost TravelCost returns for walls.
const Impassable = math.MaxInt64

// TravelCost returns a step weight for dijkstra: one per step plus climbScale
// per unit of elevation gained (rounded). Descending costs one. Steps onto
// opaque or missing cells cost Impassable.
func TravelCost(s *storage.RectHash[Cell], climbScale float64) func(from, to hex.AxialVector) int64 {
	return func(from, to hex.AxialVector) int64 {
		dst := s.GetMut(to)
		if dst == nil || dst.Opaque {
			return Impassable
		}
		src := s.GetMut(from)
		if src == nil {
			return Impassable
		}
		climb := math.Round((dst.Elevation - src.Elevation) * climbScale)
		if climb <= 0 {
			return 1
		}
		return 1 + int64(climb)
	}
}
