package hexgrid

import "errors"

var (
	// ErrEmptyGrid indicates the storage is nil or empty.
	ErrEmptyGrid = errors.New("hexgrid: grid must hold at least one position")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("hexgrid: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("hexgrid: no path between specified components")
)
