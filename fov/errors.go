package fov

import "errors"

// ErrBadRadius indicates a negative maximum radius.
var ErrBadRadius = errors.New("fov: radius must be non-negative")
