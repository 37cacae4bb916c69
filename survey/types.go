package survey

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Sentinel errors for surveys.
var (
	// ErrNoViewpoints is returned when there is nothing to survey.
	ErrNoViewpoints = errors.New("survey: no viewpoints")

	// ErrBadRadius is returned for a negative survey radius.
	ErrBadRadius = errors.New("survey: radius must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("survey: invalid option supplied")
)

// Result is the measurement taken from one viewpoint.
type Result struct {
	Q          int `csv:"q"`
	R          int `csv:"r"`
	Visible    int `csv:"visible"`
	Reachable  int `csv:"reachable"`
	Hidden     int `csv:"hidden"`
	Rectangles int `csv:"rectangles"`
}

// Option configures a survey via functional arguments.
type Option func(*Options)

// Options holds the survey parameters.
type Options struct {
	Workers   int
	MaxRadius int
	Logger    *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns one worker per CPU, radius 8 and a silent logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		MaxRadius: 8,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithWorkers bounds the number of viewpoints processed at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxRadius sets the sight and walking radius.
func WithMaxRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadRadius, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("survey: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}
