package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain generation.
var (
	// ErrBadRadius is returned for a negative disk radius.
	ErrBadRadius = errors.New("terrain: radius must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("terrain: invalid option supplied")
)

// Cell is the payload stored for each generated position.
type Cell struct {
	Elevation float64
	Opaque    bool
}

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds the noise and obstacle parameters.
type Options struct {
	Seed        int64
	Frequency   float64
	Octaves     int
	Persistence float64
	Threshold   float64
	Clearing    int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the parameters used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Seed:        1,
		Frequency:   0.08,
		Octaves:     4,
		Persistence: 0.5,
		Threshold:   0.6,
		Clearing:    1,
	}
}

// WithSeed selects the noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithFrequency sets the base sampling frequency. f must be > 0.
func WithFrequency(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: Frequency must be positive (%g)", ErrOptionViolation, f)
			return
		}
		o.Frequency = f
	}
}

// WithOctaves sets the number of noise layers. n must be ≥ 1.
func WithOctaves(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Octaves must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Octaves = n
	}
}

// WithPersistence sets the amplitude ratio between layers, in (0,1].
func WithPersistence(p float64) Option {
	return func(o *Options) {
		if p <= 0 || p > 1 {
			o.err = fmt.Errorf("%w: Persistence must be in (0,1] (%g)", ErrOptionViolation, p)
			return
		}
		o.Persistence = p
	}
}

// WithThreshold sets the elevation from which a cell is opaque. A value
// above 1 yields an open map, 0 walls everything outside the clearing.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithClearing keeps every cell within distance r of the center
// transparent. r must be ≥ 0.
func WithClearing(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: Clearing cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Clearing = r
	}
}
